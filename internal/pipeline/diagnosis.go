package pipeline

import (
	"strings"

	"opd-scribe/internal/lexicon"
)

// ExtractDiagnosis pulls diagnosis statements out of the doctor's side
// of a speaker-tagged transcript.
//
// Consecutive doctor utterances accumulate into one buffer; when the
// buffer carries a diagnostic signal it is emitted whole as a single
// diagnosis and accumulation restarts from empty. Any patient utterance
// hard-resets the buffer: diagnostic reasoning never spans a patient
// interjection, though it may span several doctor turns ("यह बुखार का" +
// "केस लग रहा है" flushes as one string).
func ExtractDiagnosis(transcript []Utterance) []string {
	var diagnoses []string
	buffer := ""

	for _, u := range transcript {
		if u.Speaker != SpeakerDoctor {
			buffer = ""
			continue
		}

		buffer = strings.TrimSpace(buffer + " " + strings.TrimSpace(u.Text))

		if containsDiagnosisSignal(buffer) {
			diagnoses = append(diagnoses, buffer)
			buffer = ""
		}
	}

	return diagnoses
}

// containsDiagnosisSignal reports whether the span carries diagnostic
// language: a single cue word, or every word of one multi-word phrase
// template (order-independent containment, not adjacency).
func containsDiagnosisSignal(text string) bool {
	if containsAny(text, lexicon.DiagnosisCues) {
		return true
	}

	for _, phrase := range lexicon.DiagnosisPhrases {
		all := true
		for _, word := range phrase {
			if !strings.Contains(text, word) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
