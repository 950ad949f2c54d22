// Package pipeline implements the deterministic extraction pipeline that
// turns a speaker-tagged Hindi consultation transcript into structured
// clinical data: normalization, segmentation, speaker attribution, and
// the symptom/negation, medication, diagnosis and advice extractors.
//
// Every extractor is a total function over text: malformed or empty
// input yields an empty result, never an error. All matching is
// lexicon-driven substring search; there is no learned component.
package pipeline

// Speaker identifies who produced an utterance.
type Speaker string

const (
	SpeakerDoctor  Speaker = "doctor"
	SpeakerPatient Speaker = "patient"
)

// Utterance is one finalized speech segment. Utterances are immutable
// once recorded and ordered by arrival.
type Utterance struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
	Seq     int     `json:"sequence_index"`
}

// Symptom is one positively reported symptom. Location and Duration are
// omitted when no evidence was found; they are never defaulted.
type Symptom struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Report is the structured record produced once per consultation. Field
// set and names are fixed: downstream consumers validate that the five
// list fields are present and list-typed.
type Report struct {
	Speaker        Speaker   `json:"speaker"`
	ChiefComplaint *string   `json:"chief_complaint"`
	Symptoms       []Symptom `json:"symptoms"`
	Negatives      []string  `json:"negatives"`
	Medications    []string  `json:"medications"`
	Diagnosis      []string  `json:"diagnosis"`
	Advice         []string  `json:"advice"`
}
