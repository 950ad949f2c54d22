package pipeline

import "strings"

// BuildReport normalizes, segments and extracts over the patient's
// combined speech and attaches medications found in medsText (pass the
// full consultation text there; an empty medsText falls back to the
// normalized patient text). The chief complaint is the first symptom
// mentioned, or null when none were.
func BuildReport(patientText string, medsText string) Report {
	normalized := Normalize(patientText)
	fragments := Segment(normalized)

	symptoms, negatives := ExtractSymptoms(fragments)

	if medsText == "" {
		medsText = normalized
	}
	medications := ExtractMedications(medsText)

	var chiefComplaint *string
	if len(symptoms) > 0 {
		chiefComplaint = &symptoms[0].Name
	}

	return Report{
		Speaker:        SpeakerPatient,
		ChiefComplaint: chiefComplaint,
		Symptoms:       symptoms,
		Negatives:      emptyIfNil(negatives),
		Medications:    emptyIfNil(medications),
		Diagnosis:      []string{},
		Advice:         []string{},
	}
}

// Assemble produces the complete structured report for one finished
// consultation: symptom extraction over the patient's lines, medication
// lookup over everything said, diagnosis and advice over the doctor's
// turns. Diagnosis and advice are deduplicated preserving first
// occurrence. An empty transcript yields an all-empty report, not an
// error.
func Assemble(transcript []Utterance) Report {
	var patientLines, allLines []string
	for _, u := range transcript {
		allLines = append(allLines, u.Text)
		if u.Speaker == SpeakerPatient {
			patientLines = append(patientLines, u.Text)
		}
	}

	report := BuildReport(strings.Join(patientLines, "\n"), strings.Join(allLines, "\n"))

	diagnoses := ExtractDiagnosis(transcript)
	report.Diagnosis = dedupe(diagnoses)
	report.Advice = dedupe(ExtractAdvice(transcript, diagnoses))

	return report
}

// dedupe keeps the first occurrence of each string, preserving order.
// Always returns a non-nil slice so the report serializes as [].
func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
