// Package tokenizer wraps a shared Chinese segmenter behind a
// reader/writer lock. Segmentation is read-mostly and fully concurrent;
// learning a new vocabulary term takes the exclusive lock for the
// dictionary mutation only, never across I/O.
package tokenizer

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-ego/gse"
)

// LearnedTermWeight is the frequency assigned to learned vocabulary
// terms. It is large enough that the segmenter's statistical model never
// subdivides a known term.
const LearnedTermWeight = 99999

// RootNameSource provides the stored word-root names for warm-up.
type RootNameSource interface {
	AllRootNames(ctx context.Context) ([]string, error)
}

// Segmenter is the process-wide segmentation dictionary.
type Segmenter struct {
	mu  sync.RWMutex
	seg gse.Segmenter
}

// New loads the default Chinese dictionary. This is the slow part of
// startup; the instance is then shared for the process lifetime.
func New() (*Segmenter, error) {
	s := &Segmenter{}
	if err := s.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("failed to load segmenter dictionary: %w", err)
	}
	return s, nil
}

// Segment splits text in precise (non-search) mode.
func (s *Segmenter) Segment(text string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seg.Cut(text, false)
}

// Learn registers a vocabulary term with the given weight so the
// segmenter keeps it whole.
func (s *Segmenter) Learn(term string, weight int) {
	if term == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.seg.AddToken(term, float64(weight))
}

// WarmUp replays Learn for every stored word-root name. The service must
// not accept traffic before this completes.
func (s *Segmenter) WarmUp(ctx context.Context, source RootNameSource) (int, error) {
	names, err := source.AllRootNames(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load root names: %w", err)
	}
	for _, name := range names {
		s.Learn(name, LearnedTermWeight)
	}
	return len(names), nil
}
