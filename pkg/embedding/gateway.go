// Package embedding serializes access to a single stateful embedding
// model. The model instance is not safe for concurrent invocation, so
// every call, single or batched, funnels through one mutex that is held
// for the inference call only, never across store or index I/O.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Common errors
var (
	// ErrEmptyInput is returned when there is nothing to embed
	ErrEmptyInput = errors.New("no input texts")

	// ErrBatchShape is returned when the model violates the contract of
	// one vector per input, in input order
	ErrBatchShape = errors.New("embedding count does not match input count")
)

// Model is a text embedding model: one fixed-length float vector per
// input, in input order.
type Model interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}

// Gateway owns a Model and serializes all calls to it.
type Gateway struct {
	mu    sync.Mutex
	model Model
}

// NewGateway wraps a model in a serializing gateway
func NewGateway(model Model) *Gateway {
	return &Gateway{model: model}
}

// Embed computes one vector per input text, preserving input order.
// The whole batch is a single model invocation.
func (g *Gateway) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	g.mu.Lock()
	vectors, err := g.model.Embed(ctx, texts)
	g.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d for %d inputs", ErrBatchShape, len(vectors), len(texts))
	}
	return vectors, nil
}

// EmbedOne computes the vector for a single text.
func (g *Gateway) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := g.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// Dimensions reports the vector length the model produces.
func (g *Gateway) Dimensions() int {
	return g.model.Dimensions()
}
