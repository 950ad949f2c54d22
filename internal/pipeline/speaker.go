package pipeline

import (
	"strings"
	"unicode/utf8"

	"opd-scribe/internal/lexicon"
)

// shortUtteranceRunes is the length at or below which an utterance is
// treated as an acknowledgement ("जी", "हाँ") and inherits the previous
// speaker instead of being classified.
const shortUtteranceRunes = 4

// SpeakerDetector labels utterances "doctor" or "patient" for one
// consultation. It is a two-state machine: cue tiers are checked in
// priority order, and anything unlabelable continues whoever was just
// speaking. Construct one detector per consultation; the zero value is
// not usable, and sharing one instance across consultations mixes their
// conversation context.
type SpeakerDetector struct {
	last Speaker
}

func NewSpeakerDetector() *SpeakerDetector {
	return &SpeakerDetector{last: SpeakerPatient}
}

// Detect returns the speaker label for text and updates the detector's
// context. Tier order: strong clinical cues, then medical imperatives,
// then patient complaint language. No match keeps the current speaker.
func (d *SpeakerDetector) Detect(text string) Speaker {
	text = strings.TrimSpace(text)

	// Micro-utterances are ambiguous by nature; keep context untouched.
	if utf8.RuneCountInString(text) <= shortUtteranceRunes {
		return d.last
	}

	if containsAny(text, lexicon.DoctorCues) {
		d.last = SpeakerDoctor
		return SpeakerDoctor
	}

	if containsAny(text, lexicon.DoctorImperatives) {
		d.last = SpeakerDoctor
		return SpeakerDoctor
	}

	if containsAny(text, lexicon.PatientCues) {
		d.last = SpeakerPatient
		return SpeakerPatient
	}

	return d.last
}

// Reset returns the detector to its initial state (patient speaks
// first) for a new consultation.
func (d *SpeakerDetector) Reset() {
	d.last = SpeakerPatient
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
