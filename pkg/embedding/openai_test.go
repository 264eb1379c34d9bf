package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *HTTPModel {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := DefaultHTTPConfig()
	cfg.BaseURL = srv.URL
	return NewHTTPModel(cfg)
}

func TestHTTPModelEmbed(t *testing.T) {
	m := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req embeddingsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"日期", "时间"}, req.Input)

		// entries deliberately out of order; index is authoritative
		fmt.Fprint(w, `{"data":[
			{"index":1,"embedding":[2,2]},
			{"index":0,"embedding":[1,1]}
		]}`)
	})

	vectors, err := m.Embed(context.Background(), []string{"日期", "时间"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{1, 1}, vectors[0])
	assert.Equal(t, []float32{2, 2}, vectors[1])
}

func TestHTTPModelBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"data":[{"index":0,"embedding":[1]}]}`)
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultHTTPConfig()
	cfg.BaseURL = srv.URL
	cfg.APIKey = "secret"
	m := NewHTTPModel(cfg)

	_, err := m.Embed(context.Background(), []string{"日期"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestHTTPModelServerError(t *testing.T) {
	m := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	})

	_, err := m.Embed(context.Background(), []string{"日期"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestHTTPModelShapeMismatch(t *testing.T) {
	m := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	})

	_, err := m.Embed(context.Background(), []string{"日期"})
	assert.ErrorIs(t, err, ErrBatchShape)
}

func TestHTTPModelBadIndex(t *testing.T) {
	m := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"index":5,"embedding":[1]}]}`)
	})

	_, err := m.Embed(context.Background(), []string{"日期"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestHTTPModelDefaults(t *testing.T) {
	m := NewHTTPModel(HTTPConfig{BaseURL: "http://localhost:9"})
	assert.Equal(t, DefaultDimensions, m.Dimensions())
}
