package pipeline

import "strings"

// Segment splits normalized text into sentence-like fragments on commas
// and newlines. Spoken medical Hindi comes in short clauses, so these
// two delimiters catch most boundaries; run-on clauses without either
// stay one fragment. Empty fragments are discarded, order is preserved.
func Segment(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fragments = append(fragments, p)
		}
	}
	return fragments
}
