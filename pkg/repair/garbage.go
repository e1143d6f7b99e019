package repair

import "strings"

// placeholderVocab is the fixed vocabulary treated as semantically empty.
// Matching is case-insensitive on the trimmed value.
var placeholderVocab = map[string]struct{}{
	"n/a":           {},
	"na":            {},
	"tbd":           {},
	"unknown":       {},
	"none":          {},
	"null":          {},
	"nil":           {},
	"not available": {},
	"-":             {},
	"—":             {},
	"...":           {},
	"n.a.":          {},
}

func isPlaceholder(s string) bool {
	_, ok := placeholderVocab[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// isGarbage flags degenerate repetitive text: strings of 20+ characters
// whose distinct lowercase words make up less than half of the total word
// count. Known to false-positive on legitimately repetitive short phrases;
// the threshold is shared across every kind on purpose.
func isGarbage(s string) bool {
	if runeLen(s) < 20 {
		return false
	}
	words := strings.Fields(strings.ToLower(s))
	if len(words) == 0 {
		return false
	}
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[w] = struct{}{}
	}
	return len(distinct)*2 < len(words)
}
