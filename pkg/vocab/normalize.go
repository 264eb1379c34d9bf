package vocab

import "strings"

// NormalizeTerms canonicalizes a synonym string: ASCII and fullwidth
// commas become spaces, runs of whitespace collapse to a single space,
// and the ends are trimmed. The result is a space-separated token list
// that whole-token LIKE matching can rely on.
func NormalizeTerms(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "，", " ")
	return strings.Join(strings.Fields(s), " ")
}

// RootEmbedText builds the embedding input for a word root: the salient
// text fields joined by single spaces, empty ones skipped.
func RootEmbedText(r WordRoot) string {
	return joinNonEmpty(r.CnName, r.EnFullName, r.AssociatedTerms)
}

// FieldEmbedText builds the embedding input for a standard field.
func FieldEmbedText(f StandardField) string {
	return joinNonEmpty(f.CnName, f.AssociatedTerms)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
