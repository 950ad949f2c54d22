package pipeline

import (
	"strings"

	"opd-scribe/internal/lexicon"
)

// negationWindowRunes is the span searched on each side of a symptom
// mention for a negation marker. Wide enough for "बुखार बिल्कुल नहीं है",
// tight enough not to bleed into the neighbouring clause.
const negationWindowRunes = 15

// ExtractSymptoms scans patient sentence fragments, in order, and
// resolves each canonical symptom to a positive record (with optional
// location and duration) or an explicit denial.
//
// Carry-over rules across fragments:
//   - a fragment matching a duration pattern but mentioning no symptom
//     parks the match in a single pending slot; the next symptom without
//     a same-sentence duration consumes it (a later standalone duration
//     overwrites an unconsumed one);
//   - duration found in the same fragment as the symptom always wins
//     over a carried-over value;
//   - location is last-mention-wins across all fragments naming the
//     symptom.
//
// A symptom found positive anywhere never appears in the negatives list,
// however often it was denied: "बुखार था, अब नहीं" still means the fever
// was real.
func ExtractSymptoms(fragments []string) ([]Symptom, []string) {
	positives := make(map[string]*Symptom)
	var order []string

	negated := make(map[string]bool)
	var negatedOrder []string

	pendingDuration := ""

	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		if match := findDuration(fragment); match != "" && !mentionsAnySymptom(fragment) {
			pendingDuration = match
			continue
		}

		for _, entry := range lexicon.Symptoms {
			if !entry.MentionedIn(fragment) {
				continue
			}

			if hasNegation(fragment, entry) {
				if !negated[entry.Canonical] {
					negated[entry.Canonical] = true
					negatedOrder = append(negatedOrder, entry.Canonical)
				}
				continue
			}

			rec, ok := positives[entry.Canonical]
			if !ok {
				rec = &Symptom{Name: entry.Canonical}
				positives[entry.Canonical] = rec
				order = append(order, entry.Canonical)
			}

			if rec.Duration == "" && pendingDuration != "" {
				rec.Duration = pendingDuration
				pendingDuration = ""
			}
			if match := findDuration(fragment); match != "" {
				rec.Duration = match
			}

			for _, loc := range lexicon.Locations {
				if loc.MentionedIn(fragment) {
					rec.Location = loc.Canonical
				}
			}
		}
	}

	symptoms := make([]Symptom, 0, len(order))
	for _, name := range order {
		symptoms = append(symptoms, *positives[name])
	}

	negatives := make([]string, 0, len(negatedOrder))
	for _, name := range negatedOrder {
		if _, positive := positives[name]; !positive {
			negatives = append(negatives, name)
		}
	}

	return symptoms, negatives
}

// hasNegation reports whether any surface form of the symptom occurring
// in the fragment has a negation marker within the window immediately
// before or after it.
func hasNegation(fragment string, entry lexicon.Entry) bool {
	forms := append(append([]string{}, entry.Variants...), entry.Canonical)
	for _, form := range forms {
		idx := strings.Index(fragment, form)
		if idx < 0 {
			continue
		}

		before := lastRunes(fragment[:idx], negationWindowRunes)
		after := firstRunes(fragment[idx+len(form):], negationWindowRunes)

		for _, neg := range lexicon.Negations {
			if strings.Contains(before, neg) || strings.Contains(after, neg) {
				return true
			}
		}
	}
	return false
}

// findDuration returns the first duration-pattern match in the
// fragment, or "".
func findDuration(fragment string) string {
	for _, pattern := range lexicon.DurationPatterns {
		if match := pattern.FindString(fragment); match != "" {
			return match
		}
	}
	return ""
}

func mentionsAnySymptom(fragment string) bool {
	for _, entry := range lexicon.Symptoms {
		if entry.MentionedIn(fragment) {
			return true
		}
	}
	return false
}

func lastRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
