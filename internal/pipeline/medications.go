package pipeline

import (
	"strings"

	"opd-scribe/internal/lexicon"
)

// ExtractMedications returns the canonical name of every medication
// whose variant set has a substring occurrence anywhere in the text
// blob. The caller passes the whole consultation (patient and doctor
// speech concatenated) since doctors often name the patient's current
// medication. Output order is lexicon order, one entry per canonical.
//
// Variants may match inside unrelated words; accepted recall tradeoff of
// substring search, kept as-is.
func ExtractMedications(text string) []string {
	text = strings.ToLower(text)

	var medications []string
	for _, entry := range lexicon.Medications {
		if entry.MentionedIn(text) {
			medications = append(medications, entry.Canonical)
		}
	}
	return medications
}
