package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultDimensions is the vector size of the MiniLM-class sentence
// models this service is deployed with.
const DefaultDimensions = 384

// HTTPConfig represents configuration for the HTTP embedding client
type HTTPConfig struct {
	BaseURL    string        `json:"baseUrl"`    // e.g. http://localhost:8080/v1
	Model      string        `json:"model"`      // model name sent with each request
	APIKey     string        `json:"apiKey"`     // optional bearer token
	Dimensions int           `json:"dimensions"` // expected vector size
	Timeout    time.Duration `json:"timeout"`    // per-request timeout
}

// DefaultHTTPConfig returns a default configuration
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		BaseURL:    "http://localhost:8080/v1",
		Model:      "paraphrase-multilingual-MiniLM-L12-v2",
		Dimensions: DefaultDimensions,
		Timeout:    30 * time.Second,
	}
}

// HTTPModel calls an OpenAI-compatible /embeddings endpoint, which is
// what local embedding servers (fastembed, TEI, ollama's compat layer)
// expose. It is stateless at this layer; serialization still happens in
// the Gateway so a single-threaded backend is never called concurrently.
type HTTPModel struct {
	config HTTPConfig
	client *http.Client
}

// NewHTTPModel creates an embedding client for an OpenAI-compatible server
func NewHTTPModel(config HTTPConfig) *HTTPModel {
	if config.Dimensions <= 0 {
		config.Dimensions = DefaultDimensions
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &HTTPModel{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type embeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingsResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Embed implements Model.
func (m *HTTPModel) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	body, err := json.Marshal(embeddingsRequest{Model: m.config.Model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.config.BaseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.config.APIKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embedding server returned %d: %s", resp.StatusCode, msg)
	}

	var parsed embeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("%w: got %d for %d inputs", ErrBatchShape, len(parsed.Data), len(texts))
	}

	// The API may return entries out of order; the index field is
	// authoritative.
	vectors := make([][]float32, len(texts))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

// Dimensions implements Model.
func (m *HTTPModel) Dimensions() int {
	return m.config.Dimensions
}
