package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bgxgame/data-dict-backend/pkg/store"
	"github.com/bgxgame/data-dict-backend/pkg/tokenizer"
	"github.com/bgxgame/data-dict-backend/pkg/vecindex"
	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

// CreateRoot inserts a word root and propagates it to the segmenter
// dictionary and the vector index. The relational insert is
// authoritative; downstream failures are logged and swallowed.
func (s *Service) CreateRoot(ctx context.Context, in vocab.RootInput) (*vocab.WordRoot, error) {
	in.AssociatedTerms = vocab.NormalizeTerms(in.AssociatedTerms)
	root, err := s.store.InsertRoot(ctx, in)
	if err != nil {
		return nil, err
	}
	s.syncRoot(ctx, *root)
	return root, nil
}

// UpdateRoot rewrites a word root and refreshes its vector point.
func (s *Service) UpdateRoot(ctx context.Context, id int64, in vocab.RootInput) (*vocab.WordRoot, error) {
	in.AssociatedTerms = vocab.NormalizeTerms(in.AssociatedTerms)
	root, err := s.store.UpdateRoot(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.syncRoot(ctx, *root)
	return root, nil
}

// DeleteRoot removes a root from both stores. The vector delete only
// runs after the relational delete touched a row, so deleting an
// unknown id never reaches the index.
func (s *Service) DeleteRoot(ctx context.Context, id int64) error {
	rows, err := s.store.DeleteRoot(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	if err := s.index.DeleteByIDs(ctx, vecindex.CollectionWordRoots, []int64{id}); err != nil {
		s.log.Warn("vector delete failed, index out of sync until resync",
			"collection", vecindex.CollectionWordRoots, "id", id, "error", err)
	}
	return nil
}

// GetRoot fetches a single root.
func (s *Service) GetRoot(ctx context.Context, id int64) (*vocab.WordRoot, error) {
	return s.store.GetRoot(ctx, id)
}

// ListRoots pages through roots with an optional name/abbr filter.
func (s *Service) ListRoots(ctx context.Context, query string, offset, limit int64) ([]vocab.WordRoot, int64, error) {
	return s.store.ListRoots(ctx, query, offset, limit)
}

// ImportRoots bulk-loads roots. Embeddings are computed in one batch up
// front; if the batch fails every row is still written relationally and
// only the index upsert is skipped. Individual insert failures are
// collected per row and do not stop the run.
func (s *Service) ImportRoots(ctx context.Context, inputs []vocab.RootInput) (vocab.ImportResult, error) {
	result := vocab.ImportResult{}
	if len(inputs) == 0 {
		return result, nil
	}

	importID := uuid.NewString()
	log := s.log.With("import_id", importID)
	log.Info("root import started", "rows", len(inputs))

	// normalize a copy so the caller's slice is untouched
	rows := make([]vocab.RootInput, len(inputs))
	texts := make([]string, len(inputs))
	for i, in := range inputs {
		in.AssociatedTerms = vocab.NormalizeTerms(in.AssociatedTerms)
		rows[i] = in
		texts[i] = vocab.RootEmbedText(vocab.WordRoot{
			CnName:          in.CnName,
			EnFullName:      in.EnFullName,
			AssociatedTerms: in.AssociatedTerms,
		})
	}

	vectors, err := s.embed.Embed(ctx, texts)
	if err != nil {
		log.Warn("batch embedding failed, importing without vectors", "error", err)
		vectors = nil
	}

	var points []vecindex.Point
	for i, in := range rows {
		root, err := s.store.InsertRoot(ctx, in)
		if err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: root [%s]: %v", i+1, in.CnName, err))
			continue
		}
		result.SuccessCount++
		s.terms.Learn(root.CnName, tokenizer.LearnedTermWeight)
		if vectors != nil {
			points = append(points, rootPoint(*root, vectors[i]))
		}
	}

	if len(points) > 0 {
		if err := s.index.Upsert(ctx, vecindex.CollectionWordRoots, points); err != nil {
			log.Warn("index upsert failed, index out of sync until resync",
				"collection", vecindex.CollectionWordRoots, "points", len(points), "error", err)
		}
	}

	log.Info("root import finished",
		"success", result.SuccessCount, "failed", result.FailureCount)
	return result, nil
}

// ClearRoots truncates the root table and empties the matching
// collection. A failed vector clear is reported as ErrVectorClearFailed
// but the relational truncate stands.
func (s *Service) ClearRoots(ctx context.Context) error {
	if err := s.store.TruncateRoots(ctx); err != nil {
		return err
	}
	if err := s.index.DeleteAll(ctx, vecindex.CollectionWordRoots); err != nil {
		return fmt.Errorf("%w: %v", ErrVectorClearFailed, err)
	}
	return nil
}

// ResyncRoots rebuilds the word_roots collection from the relational
// store. Unlike the mutation path, embedding and index errors surface
// here; a resync that cannot repair the index must say so.
func (s *Service) ResyncRoots(ctx context.Context) (int, error) {
	roots, err := s.store.AllRoots(ctx)
	if err != nil {
		return 0, err
	}
	if len(roots) == 0 {
		return 0, nil
	}

	texts := make([]string, len(roots))
	for i, r := range roots {
		texts[i] = vocab.RootEmbedText(r)
	}
	vectors, err := s.embed.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed roots: %w", err)
	}

	points := make([]vecindex.Point, len(roots))
	for i, r := range roots {
		points[i] = rootPoint(r, vectors[i])
	}
	if err := s.index.Upsert(ctx, vecindex.CollectionWordRoots, points); err != nil {
		return 0, fmt.Errorf("upsert roots: %w", err)
	}
	return len(points), nil
}

func (s *Service) syncRoot(ctx context.Context, root vocab.WordRoot) {
	s.terms.Learn(root.CnName, tokenizer.LearnedTermWeight)
	vec, err := s.embed.EmbedOne(ctx, vocab.RootEmbedText(root))
	if err != nil {
		s.log.Warn("embedding failed, root not indexed until resync",
			"id", root.ID, "cn_name", root.CnName, "error", err)
		return
	}
	if err := s.index.Upsert(ctx, vecindex.CollectionWordRoots, []vecindex.Point{rootPoint(root, vec)}); err != nil {
		s.log.Warn("index upsert failed, root not indexed until resync",
			"id", root.ID, "cn_name", root.CnName, "error", err)
	}
}
