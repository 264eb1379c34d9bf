package vocab

import "time"

// WordRoot is the atomic vocabulary unit: a named Chinese term with its
// standard English abbreviation. The relational ID doubles as the vector
// index point ID, so the two stores are joined by identity.
type WordRoot struct {
	ID              int64     `json:"id"`
	CnName          string    `json:"cn_name"`
	EnAbbr          string    `json:"en_abbr"`
	EnFullName      string    `json:"en_full_name,omitempty"`
	AssociatedTerms string    `json:"associated_terms,omitempty"`
	Remark          string    `json:"remark,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// StandardField is a composite vocabulary unit assembled from word roots.
// CompositionIDs is ordered: it is the assembly order of the English name.
type StandardField struct {
	ID              int64     `json:"id"`
	CnName          string    `json:"field_cn_name"`
	EnName          string    `json:"field_en_name"`
	CompositionIDs  []int64   `json:"composition_ids"`
	DataType        string    `json:"data_type"`
	AssociatedTerms string    `json:"associated_terms,omitempty"`
	IsStandard      bool      `json:"is_standard"`
	CreatedAt       time.Time `json:"created_at"`
}

// RootInput carries the caller-provided content of a word root.
type RootInput struct {
	CnName          string `json:"cn_name"`
	EnAbbr          string `json:"en_abbr"`
	EnFullName      string `json:"en_full_name,omitempty"`
	AssociatedTerms string `json:"associated_terms,omitempty"`
	Remark          string `json:"remark,omitempty"`
}

// FieldInput carries the caller-provided content of a standard field.
type FieldInput struct {
	CnName          string  `json:"field_cn_name"`
	EnName          string  `json:"field_en_name"`
	CompositionIDs  []int64 `json:"composition_ids"`
	DataType        string  `json:"data_type"`
	AssociatedTerms string  `json:"associated_terms,omitempty"`
}

// Segment is one resolved token: the literal sub-string plus every word
// root it matched, exact matches first. Tokens that match nothing keep an
// empty candidate list so callers see the gap explicitly.
type Segment struct {
	Word       string     `json:"word"`
	Candidates []WordRoot `json:"candidates"`
}

// ImportResult summarizes a batch import. Row failures never abort
// sibling rows; they are collected here instead.
type ImportResult struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Errors       []string `json:"errors"`
}

// Search result origins.
const (
	SourceLexical  = "lexical"
	SourceSemantic = "semantic"
)

// SearchResult is the uniform display record served by hybrid search,
// regardless of which pass produced it. Score is only meaningful for
// semantic hits.
type SearchResult struct {
	ID     int64   `json:"id"`
	CnName string  `json:"cn_name"`
	EnName string  `json:"en_name"`
	Score  float32 `json:"score,omitempty"`
	Source string  `json:"source"`
}

// RootSuggestion is a semantically similar word root with its cosine score.
type RootSuggestion struct {
	ID     int64   `json:"id"`
	CnName string  `json:"cn_name"`
	EnAbbr string  `json:"en_abbr"`
	Score  float32 `json:"score"`
}
