package pipeline

import "testing"

func TestExtractPatientName(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"english explicit", "patient name Samarth age 30", "Samarth"},
		{"english with is", "the patient name is Rahul", "Rahul"},
		{"hindi explicit", "मेरा नाम समर्थ है और मुझे बुखार है", "समर्थ"},
		{"hindi self intro", "मैं समर्थ हूं", "समर्थ"},
		{"nothing", "मुझे बुखार है", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractPatientName(tc.text); got != tc.want {
				t.Errorf("ExtractPatientName(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractPatientAge(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"numeric hindi", "मेरी उम्र 35 साल है", 35},
		{"numeric english", "patient age is 42", 42},
		{"bare saal", "मैं 28 साल का हूं", 28},
		{"spoken number", "मरीज पैंतीस साल का है", 35},
		{"compound not shadowed", "वो पच्चीस साल की है", 25},
		{"implausible", "वो 200 साल का है", 0},
		{"none", "मुझे बुखार है", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractPatientAge(tc.text); got != tc.want {
				t.Errorf("ExtractPatientAge(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}
