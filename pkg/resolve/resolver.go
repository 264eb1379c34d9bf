// Package resolve turns free-form Chinese field descriptions into
// standardized vocabulary suggestions, and answers field searches with
// a lexical-first, semantic-fallback strategy.
package resolve

import (
	"context"
	"strings"

	"github.com/bgxgame/data-dict-backend/pkg/logging"
	"github.com/bgxgame/data-dict-backend/pkg/store"
	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

// Tokenizer is the segmentation contract. Segment must return the
// precise-mode split of text, in order.
type Tokenizer interface {
	Segment(text string) []string
}

// Resolver maps input phrases to word-root candidates.
type Resolver struct {
	store  *store.Store
	tokens Tokenizer
	log    logging.Logger
}

// NewResolver creates a resolver. A nil logger defaults to the nop
// logger.
func NewResolver(st *store.Store, tokens Tokenizer, log logging.Logger) *Resolver {
	if log == nil {
		log = logging.Nop()
	}
	return &Resolver{store: st, tokens: tokens, log: log}
}

// Suggest resolves an input phrase to per-token root candidates. The
// whole trimmed phrase is tried against the vocabulary first; any hit
// suppresses segmentation entirely and the phrase comes back as one
// segment. Otherwise the phrase is segmented and each token resolved
// independently. Tokens with no match keep an empty candidate list so
// the caller sees the full split.
func (r *Resolver) Suggest(ctx context.Context, input string) ([]vocab.Segment, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []vocab.Segment{}, nil
	}

	whole, err := r.store.RootCandidates(ctx, input)
	if err != nil {
		r.log.Warn("whole-phrase lookup failed, falling back to segmentation",
			"input", input, "error", err)
	} else if len(whole) > 0 {
		return []vocab.Segment{{Word: input, Candidates: whole}}, nil
	}

	var segments []vocab.Segment
	for _, token := range r.tokens.Segment(input) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		candidates, err := r.store.RootCandidates(ctx, token)
		if err != nil {
			r.log.Warn("token lookup failed", "token", token, "error", err)
		}
		if candidates == nil {
			candidates = []vocab.WordRoot{}
		}
		segments = append(segments, vocab.Segment{Word: token, Candidates: candidates})
	}
	if segments == nil {
		segments = []vocab.Segment{}
	}
	return segments, nil
}
