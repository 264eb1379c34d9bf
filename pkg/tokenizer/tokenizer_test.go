package tokenizer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSegmenter(t *testing.T) *Segmenter {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	return s
}

func TestSegmentSplitsPhrase(t *testing.T) {
	s := newTestSegmenter(t)

	tokens := s.Segment("创建日期")
	assert.NotEmpty(t, tokens)
	assert.Equal(t, "创建日期", strings.Join(tokens, ""))
}

func TestLearnKeepsTermWhole(t *testing.T) {
	s := newTestSegmenter(t)

	// an invented compound the stock dictionary cannot know
	term := "贷审标识码"
	s.Learn(term, LearnedTermWeight)

	tokens := s.Segment(term)
	assert.Equal(t, []string{term}, tokens)
}

func TestLearnEmptyTermIsNoop(t *testing.T) {
	s := newTestSegmenter(t)
	s.Learn("", LearnedTermWeight)
	assert.Empty(t, s.Segment(""))
}

type fakeNameSource struct {
	names []string
	err   error
}

func (f fakeNameSource) AllRootNames(ctx context.Context) ([]string, error) {
	return f.names, f.err
}

func TestWarmUp(t *testing.T) {
	s := newTestSegmenter(t)

	n, err := s.WarmUp(context.Background(), fakeNameSource{names: []string{"贷审标识码", "结汇水单号"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, []string{"贷审标识码"}, s.Segment("贷审标识码"))
	assert.Equal(t, []string{"结汇水单号"}, s.Segment("结汇水单号"))
}

func TestWarmUpSourceError(t *testing.T) {
	s := newTestSegmenter(t)

	srcErr := errors.New("store down")
	_, err := s.WarmUp(context.Background(), fakeNameSource{err: srcErr})
	assert.ErrorIs(t, err, srcErr)
}

func TestConcurrentSegmentAndLearn(t *testing.T) {
	s := newTestSegmenter(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Segment("创建日期和更新时间")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			s.Learn("贷审标识码", LearnedTermWeight)
		}
	}()
	wg.Wait()
}
