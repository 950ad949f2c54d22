package pipeline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"opd-scribe/internal/lexicon"
)

// Patient demographics extraction. Non-clinical add-on: name and age are
// kept on the archived consultation and the printed report header, never
// in the structured boundary JSON.

var enNamePattern = regexp.MustCompile(`(?i)patient\s+name\s*(?:is\s*)?([A-Za-z]+)`)

var hiNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`patient\s+ka\s+naam\s+(\S+)`),
	regexp.MustCompile(`मरीज\s+का\s+नाम\s+(\S+)`),
	regexp.MustCompile(`मेरा\s+नाम\s+(\S+)`),
	regexp.MustCompile(`नाम\s+(\S+)\s+है`),
	regexp.MustCompile(`पेशेंट\s+नेम\s+(\S+)`),
}

var hiSelfNamePattern = regexp.MustCompile(`मैं\s+(\S+)\s+(?:हूँ|हूं)`)

var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)patient\s+age\s*(?:is\s*)?(\d{1,3})`),
	regexp.MustCompile(`मेरी\s+उम्र\s*(\d{1,3})`),
	regexp.MustCompile(`उम्र\s*(\d{1,3})`),
	regexp.MustCompile(`(\d{1,3})\s*साल`),
}

// ExtractPatientName finds the patient's name in the transcript text.
// Priority: explicit English command, explicit Hindi phrase, Hindi
// self-introduction. Returns "" when nothing matched.
func ExtractPatientName(text string) string {
	if text == "" {
		return ""
	}

	if m := enNamePattern.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); len([]rune(name)) >= 2 {
			return name
		}
	}

	for _, pat := range hiNamePatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			if name := strings.TrimSpace(m[1]); len([]rune(name)) >= 2 {
				return name
			}
		}
	}

	if m := hiSelfNamePattern.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); len([]rune(name)) >= 2 {
			return name
		}
	}

	return ""
}

// ExtractPatientAge finds the patient's age, accepting digits and spoken
// Hindi number words ("पैंतीस साल"). Returns 0 when no plausible age
// (0 < age < 120) was mentioned.
func ExtractPatientAge(text string) int {
	if text == "" {
		return 0
	}

	for _, pat := range agePatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			if age, err := strconv.Atoi(m[1]); err == nil && age > 0 && age < 120 {
				return age
			}
		}
	}

	for _, word := range numberWordsByLength() {
		if strings.Contains(text, word+" साल") || strings.Contains(text, word+" वर्ष") {
			if value := lexicon.HindiNumberWords[word]; value > 0 && value < 120 {
				return value
			}
		}
	}

	return 0
}

// numberWordsByLength returns the spoken-number words longest first so
// compounds win over their substrings ("पैंतीस" before "तीस").
func numberWordsByLength() []string {
	numberWordsOnce.Do(func() {
		for word := range lexicon.HindiNumberWords {
			numberWords = append(numberWords, word)
		}
		sort.Slice(numberWords, func(i, j int) bool {
			if len(numberWords[i]) != len(numberWords[j]) {
				return len(numberWords[i]) > len(numberWords[j])
			}
			return numberWords[i] < numberWords[j]
		})
	})
	return numberWords
}

var (
	numberWordsOnce sync.Once
	numberWords     []string
)
