package embedding

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingModel returns a distinct vector per input and fails the test
// if two invocations ever overlap.
type countingModel struct {
	mu     sync.Mutex
	active bool
	calls  int
	t      *testing.T
	err    error
	short  bool
}

func (m *countingModel) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	if m.active {
		m.t.Error("concurrent model invocation")
	}
	m.active = true
	m.calls++
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.active = false
		m.mu.Unlock()
	}()

	if m.err != nil {
		return nil, m.err
	}
	n := len(texts)
	if m.short {
		n--
	}
	vectors := make([][]float32, n)
	for i := range vectors {
		vectors[i] = []float32{float32(i)}
	}
	return vectors, nil
}

func (m *countingModel) Dimensions() int { return 1 }

func TestEmbedPreservesOrder(t *testing.T) {
	g := NewGateway(&countingModel{t: t})

	vectors, err := g.Embed(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)
	for i, v := range vectors {
		assert.Equal(t, []float32{float32(i)}, v)
	}
}

func TestEmbedEmptyInput(t *testing.T) {
	g := NewGateway(&countingModel{t: t})
	_, err := g.Embed(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestEmbedShapeMismatch(t *testing.T) {
	g := NewGateway(&countingModel{t: t, short: true})
	_, err := g.Embed(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, ErrBatchShape)
}

func TestEmbedPropagatesModelError(t *testing.T) {
	modelErr := errors.New("model down")
	g := NewGateway(&countingModel{t: t, err: modelErr})
	_, err := g.EmbedOne(context.Background(), "a")
	assert.ErrorIs(t, err, modelErr)
}

func TestEmbedSerializesModelAccess(t *testing.T) {
	model := &countingModel{t: t}
	g := NewGateway(model)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.EmbedOne(context.Background(), "text")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, model.calls)
}
