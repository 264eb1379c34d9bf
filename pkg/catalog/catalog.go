// Package catalog is the write path of the vocabulary: every mutation
// goes to the relational store first, and only a successful relational
// write triggers the downstream embedding and vector-index work. The two
// stores are not transactional together: the vector side is a
// best-effort replica that a resync can always rebuild, so embedding and
// index failures are logged and tolerated, never returned to the caller.
package catalog

import (
	"context"
	"errors"

	"github.com/bgxgame/data-dict-backend/pkg/logging"
	"github.com/bgxgame/data-dict-backend/pkg/store"
	"github.com/bgxgame/data-dict-backend/pkg/vecindex"
	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

// ErrVectorClearFailed reports the partial outcome of a clear: the
// relational truncate succeeded but the vector-side delete did not. The
// relational store is authoritative; a resync repairs the index.
var ErrVectorClearFailed = errors.New("vocabulary cleared but vector index clear failed")

// Embedder is the serialized embedding gateway contract.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex is the slice of the vector index the synchronizer writes.
type VectorIndex interface {
	Upsert(ctx context.Context, collection string, points []vecindex.Point) error
	DeleteByIDs(ctx context.Context, collection string, ids []int64) error
	DeleteAll(ctx context.Context, collection string) error
}

// Learner receives newly standardized terms so the segmenter never
// splits a known vocabulary entry.
type Learner interface {
	Learn(term string, weight int)
}

// Service synchronizes the relational store, the vector index and the
// segmenter dictionary on every vocabulary mutation.
type Service struct {
	store *store.Store
	index VectorIndex
	embed Embedder
	terms Learner
	log   logging.Logger
}

// New creates a synchronizer. A nil logger defaults to the nop logger.
func New(st *store.Store, index VectorIndex, embed Embedder, terms Learner, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{store: st, index: index, embed: embed, terms: terms, log: log}
}

func rootPoint(r vocab.WordRoot, vec []float32) vecindex.Point {
	return vecindex.Point{
		ID:     r.ID,
		Vector: vec,
		Payload: map[string]string{
			"cn_name": r.CnName,
			"en_abbr": r.EnAbbr,
		},
	}
}

func fieldPoint(f vocab.StandardField, vec []float32) vecindex.Point {
	return vecindex.Point{
		ID:     f.ID,
		Vector: vec,
		Payload: map[string]string{
			"cn_name": f.CnName,
			"en_name": f.EnName,
		},
	}
}
