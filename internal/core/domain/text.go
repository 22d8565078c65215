package domain

import (
	"strings"
	"unicode"
)

// Words splits text into lowercased runs of letters and digits.
func Words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// DistinctWords returns the distinct words of text longer than minLen, in
// first-occurrence order.
func DistinctWords(text string, minLen int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range Words(text) {
		if len(w) <= minLen {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
