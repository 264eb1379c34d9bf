// Package vecindex adapts the vocabulary to a Qdrant vector index. The
// index is a derived, best-effort replica of the relational store: every
// point id equals the relational row id, so the two stores are joined by
// identity and a full resync can always rebuild the index from scratch.
package vecindex

// Collection names. Each holds 384-dimensional vectors under cosine
// similarity.
const (
	CollectionWordRoots      = "word_roots"
	CollectionStandardFields = "standard_fields"
)

// VectorDim is the embedding size both collections are configured for.
const VectorDim = 384

// Point is one entry to upsert: the relational id, its embedding, and
// the display payload hybrid search renders from.
type Point struct {
	ID      int64
	Vector  []float32
	Payload map[string]string
}

// Hit is one nearest-neighbor result.
type Hit struct {
	ID      int64
	Score   float32
	Payload map[string]string
}
