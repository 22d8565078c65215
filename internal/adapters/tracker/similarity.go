package tracker

import "go.trai.ch/brief/internal/core/domain"

// minTokenLen is the length a word must exceed to count as a task token.
const minTokenLen = 3

var stopWords = map[string]struct{}{
	"about": {}, "after": {}, "also": {}, "been": {}, "before": {}, "could": {},
	"does": {}, "each": {}, "from": {}, "have": {}, "into": {}, "just": {},
	"like": {}, "make": {}, "more": {}, "need": {}, "only": {}, "please": {},
	"should": {}, "some": {}, "than": {}, "that": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"very": {}, "want": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "will": {}, "with": {}, "would": {}, "your": {},
}

// Tokens returns the set of significant words of a task description.
func Tokens(task string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range domain.DistinctWords(task, minTokenLen) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Similarity returns the Jaccard similarity of the token sets of a and b.
// Two empty token sets have similarity 0.
func Similarity(a, b string) float64 {
	ta, tb := Tokens(a), Tokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter := 0
	for w := range ta {
		if _, ok := tb[w]; ok {
			inter++
		}
	}
	union := len(ta) + len(tb) - inter
	return float64(inter) / float64(union)
}
