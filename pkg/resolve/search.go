package resolve

import (
	"context"
	"strings"

	"github.com/bgxgame/data-dict-backend/pkg/logging"
	"github.com/bgxgame/data-dict-backend/pkg/store"
	"github.com/bgxgame/data-dict-backend/pkg/vecindex"
	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

const (
	lexicalLimit  = 10
	semanticLimit = 5
)

// Embedder embeds a single query string.
type Embedder interface {
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}

// SemanticIndex is the read side of the vector index.
type SemanticIndex interface {
	Search(ctx context.Context, collection string, vector []float32, limit int) ([]vecindex.Hit, error)
}

// Searcher answers hybrid field searches and root similarity queries.
type Searcher struct {
	store *store.Store
	embed Embedder
	index SemanticIndex
	log   logging.Logger
}

// NewSearcher creates a searcher. A nil logger defaults to the nop
// logger.
func NewSearcher(st *store.Store, embed Embedder, index SemanticIndex, log logging.Logger) *Searcher {
	if log == nil {
		log = logging.Nop()
	}
	return &Searcher{store: st, embed: embed, index: index, log: log}
}

// SearchFields runs the hybrid field search: a lexical substring pass
// first, and a semantic pass only when the lexical pass finds nothing.
// Semantic-side failures degrade to an empty result instead of an
// error, so a down embedding service never breaks search.
func (s *Searcher) SearchFields(ctx context.Context, query string) ([]vocab.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []vocab.SearchResult{}, nil
	}

	fields, err := s.store.SearchFields(ctx, query, lexicalLimit)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		results := make([]vocab.SearchResult, len(fields))
		for i, f := range fields {
			results[i] = vocab.SearchResult{
				ID:     f.ID,
				CnName: f.CnName,
				EnName: f.EnName,
				Score:  1.0,
				Source: vocab.SourceLexical,
			}
		}
		return results, nil
	}

	vec, err := s.embed.EmbedOne(ctx, query)
	if err != nil {
		s.log.Warn("query embedding failed, semantic search skipped", "query", query, "error", err)
		return []vocab.SearchResult{}, nil
	}
	hits, err := s.index.Search(ctx, vecindex.CollectionStandardFields, vec, semanticLimit)
	if err != nil {
		s.log.Warn("semantic search failed", "query", query, "error", err)
		return []vocab.SearchResult{}, nil
	}

	results := make([]vocab.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = vocab.SearchResult{
			ID:     h.ID,
			CnName: h.Payload["cn_name"],
			EnName: h.Payload["en_name"],
			Score:  h.Score,
			Source: vocab.SourceSemantic,
		}
	}
	return results, nil
}

// SimilarRoots returns the roots closest in meaning to the query. This
// path is purely semantic and, unlike SearchFields, surfaces backend
// failures to the caller.
func (s *Searcher) SimilarRoots(ctx context.Context, query string) ([]vocab.RootSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []vocab.RootSuggestion{}, nil
	}

	vec, err := s.embed.EmbedOne(ctx, query)
	if err != nil {
		return nil, err
	}
	hits, err := s.index.Search(ctx, vecindex.CollectionWordRoots, vec, semanticLimit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]vocab.RootSuggestion, len(hits))
	for i, h := range hits {
		suggestions[i] = vocab.RootSuggestion{
			ID:     h.ID,
			CnName: h.Payload["cn_name"],
			EnAbbr: h.Payload["en_abbr"],
			Score:  h.Score,
		}
	}
	return suggestions, nil
}
