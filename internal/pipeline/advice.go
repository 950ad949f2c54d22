package pipeline

import (
	"strings"

	"opd-scribe/internal/lexicon"
)

// ExtractAdvice returns doctor utterances containing advisory language.
// Utterances whose trimmed text was already captured verbatim as a
// diagnosis are skipped so a sentence is never counted twice. One
// emission per utterance at most; the first matching cue short-circuits.
//
// A doctor repeating the same instruction produces duplicate entries
// here; order-preserving deduplication happens in the report assembler.
func ExtractAdvice(transcript []Utterance, diagnoses []string) []string {
	captured := make(map[string]bool, len(diagnoses))
	for _, d := range diagnoses {
		captured[d] = true
	}

	var advice []string
	for _, u := range transcript {
		if u.Speaker != SpeakerDoctor {
			continue
		}

		text := strings.TrimSpace(u.Text)
		if text == "" || captured[text] {
			continue
		}

		if containsAny(text, lexicon.AdviceCues) {
			advice = append(advice, text)
		}
	}

	return advice
}
