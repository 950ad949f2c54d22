package pipeline

import (
	"reflect"
	"testing"
)

func TestExtractSymptoms_SameSentenceDuration(t *testing.T) {
	symptoms, negatives := ExtractSymptoms([]string{"मुझे परसों से बुखार लग रहा है"})

	if len(symptoms) != 1 {
		t.Fatalf("symptoms = %v, want one", symptoms)
	}
	if symptoms[0].Name != "बुखार" {
		t.Errorf("name = %q, want बुखार", symptoms[0].Name)
	}
	if symptoms[0].Duration != "परसों से" {
		t.Errorf("duration = %q, want परसों से", symptoms[0].Duration)
	}
	if len(negatives) != 0 {
		t.Errorf("negatives = %v, want none", negatives)
	}
}

func TestExtractSymptoms_PendingDurationCarryOver(t *testing.T) {
	symptoms, _ := ExtractSymptoms([]string{"तीन दिन से", "सिर दर्द है"})

	if len(symptoms) != 1 || symptoms[0].Name != "सिर दर्द" {
		t.Fatalf("symptoms = %v, want one सिर दर्द", symptoms)
	}
	if symptoms[0].Duration != "तीन दिन से" {
		t.Errorf("duration = %q, want carried-over तीन दिन से", symptoms[0].Duration)
	}
}

func TestExtractSymptoms_PendingDurationSingleSlot(t *testing.T) {
	// A second standalone duration overwrites, not queues, the first.
	symptoms, _ := ExtractSymptoms([]string{"दो दिन से", "चार दिन से", "खांसी है"})

	if len(symptoms) != 1 {
		t.Fatalf("symptoms = %v, want one", symptoms)
	}
	if symptoms[0].Duration != "चार दिन से" {
		t.Errorf("duration = %q, want चार दिन से", symptoms[0].Duration)
	}
}

func TestExtractSymptoms_PendingConsumedOnce(t *testing.T) {
	symptoms, _ := ExtractSymptoms([]string{"पांच दिन से", "खांसी है", "उल्टी भी है"})

	byName := map[string]Symptom{}
	for _, s := range symptoms {
		byName[s.Name] = s
	}
	if byName["खांसी"].Duration != "पांच दिन से" {
		t.Errorf("खांसी duration = %q, want पांच दिन से", byName["खांसी"].Duration)
	}
	// The carry-over slot is single-use.
	if byName["उल्टी"].Duration != "" {
		t.Errorf("उल्टी duration = %q, want empty", byName["उल्टी"].Duration)
	}
}

func TestExtractSymptoms_SameSentenceBeatsPending(t *testing.T) {
	symptoms, _ := ExtractSymptoms([]string{"पांच दिन से", "खांसी दो दिन से है"})

	if len(symptoms) != 1 {
		t.Fatalf("symptoms = %v, want one", symptoms)
	}
	if symptoms[0].Duration != "दो दिन से" {
		t.Errorf("duration = %q, want same-sentence दो दिन से", symptoms[0].Duration)
	}
}

func TestExtractSymptoms_Negation(t *testing.T) {
	symptoms, negatives := ExtractSymptoms([]string{"बुखार नहीं है"})

	if len(symptoms) != 0 {
		t.Fatalf("symptoms = %v, want none", symptoms)
	}
	if !reflect.DeepEqual(negatives, []string{"बुखार"}) {
		t.Fatalf("negatives = %v, want [बुखार]", negatives)
	}
}

func TestExtractSymptoms_PositiveOverridesNegation(t *testing.T) {
	// Denied then affirmed, in either order: the positive finding wins.
	cases := [][]string{
		{"बुखार नहीं है", "मुझे बुखार है"},
		{"मुझे बुखार है", "बुखार नहीं है"},
	}

	for _, fragments := range cases {
		symptoms, negatives := ExtractSymptoms(fragments)
		if len(symptoms) != 1 || symptoms[0].Name != "बुखार" {
			t.Errorf("ExtractSymptoms(%v) symptoms = %v, want बुखार positive", fragments, symptoms)
		}
		for _, n := range negatives {
			if n == "बुखार" {
				t.Errorf("ExtractSymptoms(%v): बुखार in negatives despite positive mention", fragments)
			}
		}
	}
}

func TestExtractSymptoms_NegationWindowIsLocal(t *testing.T) {
	// The denial sits well beyond 15 runes from the mention; the symptom
	// stays positive.
	symptoms, negatives := ExtractSymptoms([]string{"बुखार तो है लेकिन पहले जैसा तेज अब नहीं"})

	if len(symptoms) != 1 || symptoms[0].Name != "बुखार" {
		t.Fatalf("symptoms = %v, want बुखार positive", symptoms)
	}
	if len(negatives) != 0 {
		t.Fatalf("negatives = %v, want none", negatives)
	}
}

func TestExtractSymptoms_LastLocationWins(t *testing.T) {
	symptoms, _ := ExtractSymptoms([]string{"हाथ में खुजली है", "पैर में भी खुजली है"})

	if len(symptoms) != 1 {
		t.Fatalf("symptoms = %v, want one", symptoms)
	}
	if symptoms[0].Location != "पैर" {
		t.Errorf("location = %q, want पैर (last mention)", symptoms[0].Location)
	}
}

func TestExtractSymptoms_InsertionOrder(t *testing.T) {
	symptoms, _ := ExtractSymptoms([]string{"खांसी है", "बुखार भी है", "खांसी बहुत है"})

	if len(symptoms) != 2 {
		t.Fatalf("symptoms = %v, want two", symptoms)
	}
	if symptoms[0].Name != "खांसी" || symptoms[1].Name != "बुखार" {
		t.Errorf("order = [%s %s], want first-mention order [खांसी बुखार]",
			symptoms[0].Name, symptoms[1].Name)
	}
}

func TestExtractSymptoms_HinglishVariant(t *testing.T) {
	symptoms, _ := ExtractSymptoms([]string{"वीकनेस लगती है"})

	if len(symptoms) != 1 || symptoms[0].Name != "कमजोरी" {
		t.Fatalf("symptoms = %v, want कमजोरी via वीकनेस variant", symptoms)
	}
}

func TestExtractSymptoms_EmptyInput(t *testing.T) {
	symptoms, negatives := ExtractSymptoms(nil)
	if len(symptoms) != 0 || len(negatives) != 0 {
		t.Fatalf("got %v / %v, want empty", symptoms, negatives)
	}

	symptoms, negatives = ExtractSymptoms([]string{"", "   "})
	if len(symptoms) != 0 || len(negatives) != 0 {
		t.Fatalf("blank fragments: got %v / %v, want empty", symptoms, negatives)
	}
}
