package pipeline

import (
	"reflect"
	"testing"
)

func TestExtractDiagnosis_JoinsConsecutiveDoctorTurns(t *testing.T) {
	transcript := []Utterance{
		{Speaker: SpeakerDoctor, Text: "यह बुखार का"},
		{Speaker: SpeakerDoctor, Text: "केस लग रहा है"},
	}

	got := ExtractDiagnosis(transcript)
	want := []string{"यह बुखार का केस लग रहा है"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractDiagnosis = %v, want %v", got, want)
	}
}

func TestExtractDiagnosis_PatientInterjectionResetsBuffer(t *testing.T) {
	// Neither doctor half carries a diagnostic signal on its own; with a
	// patient turn between them the joint diagnosis must never fire.
	transcript := []Utterance{
		{Speaker: SpeakerDoctor, Text: "यह तो केस"},
		{Speaker: SpeakerPatient, Text: "अच्छा डॉक्टर साहब"},
		{Speaker: SpeakerDoctor, Text: "गंभीर वाला लग रहा"},
	}

	got := ExtractDiagnosis(transcript)
	if len(got) != 0 {
		t.Fatalf("ExtractDiagnosis = %v, want none after patient reset", got)
	}

	// Control: without the interjection the pair flushes as one.
	joined := ExtractDiagnosis([]Utterance{transcript[0], transcript[2]})
	want := []string{"यह तो केस गंभीर वाला लग रहा"}
	if !reflect.DeepEqual(joined, want) {
		t.Fatalf("control ExtractDiagnosis = %v, want %v", joined, want)
	}
}

func TestExtractDiagnosis_SingleCueFlushes(t *testing.T) {
	transcript := []Utterance{
		{Speaker: SpeakerDoctor, Text: "आपको वायरल इन्फेक्शन हुआ है"},
	}

	got := ExtractDiagnosis(transcript)
	want := []string{"आपको वायरल इन्फेक्शन हुआ है"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractDiagnosis = %v, want %v", got, want)
	}
}

func TestExtractDiagnosis_BufferRestartsAfterFlush(t *testing.T) {
	transcript := []Utterance{
		{Speaker: SpeakerDoctor, Text: "यह बुखार का केस है"},
		{Speaker: SpeakerDoctor, Text: "दवा समय पर खानी होगी"},
		{Speaker: SpeakerDoctor, Text: "आपको इन्फेक्शन भी है"},
	}

	got := ExtractDiagnosis(transcript)
	if len(got) != 2 {
		t.Fatalf("ExtractDiagnosis = %v, want two flushes", got)
	}
	if got[0] != "यह बुखार का केस है" {
		t.Errorf("first = %q", got[0])
	}
	// The second flush starts from the post-flush buffer, so it carries
	// the non-diagnostic turn accumulated since.
	if got[1] != "दवा समय पर खानी होगी आपको इन्फेक्शन भी है" {
		t.Errorf("second = %q", got[1])
	}
}

func TestExtractDiagnosis_PatientOnlyTranscript(t *testing.T) {
	transcript := []Utterance{
		{Speaker: SpeakerPatient, Text: "मुझे बुखार है"},
		{Speaker: SpeakerPatient, Text: "सिर दर्द भी है"},
	}

	if got := ExtractDiagnosis(transcript); len(got) != 0 {
		t.Fatalf("ExtractDiagnosis = %v, want none", got)
	}
}
