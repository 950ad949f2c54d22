package pipeline

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"opd-scribe/internal/lexicon"
)

// punctuation-only leftovers after stripping fillers from a line
var punctOnly = map[string]bool{"": true, ",": true, ".": true, "!": true, "?": true, "।": true}

// Normalize removes pure-filler lines from a raw transcript and
// case-folds what remains. Devanagari arrives from ASR in mixed
// composed/decomposed forms, so every line is NFC-normalized first.
//
// A line is dropped only when it carries no clinical content at all:
// it equals a known filler phrase, is repetitions of one filler phrase,
// or reduces to punctuation once every filler phrase is stripped. A line
// mixing filler with real content ("हाँ मुझे बुखार है") is kept in full.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		line = norm.NFC.String(line)
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || isFillerLine(line) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

func isFillerLine(line string) bool {
	for _, filler := range lexicon.FillerLines {
		if line == filler {
			return true
		}
		// repetitions of a single filler, e.g. "हेलो हेलो हेलो"
		if strings.TrimSpace(strings.ReplaceAll(line, filler, "")) == "" {
			return true
		}
	}

	// combinations of several fillers, e.g. "हेलो आवाज आ रही है"
	remaining := line
	for _, filler := range lexicon.FillerLines {
		remaining = strings.ReplaceAll(remaining, filler, "")
	}
	return punctOnly[strings.TrimSpace(remaining)]
}
