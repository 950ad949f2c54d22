// Package lexicon holds the static vocabulary tables the extraction
// pipeline matches against: canonical clinical terms with their spoken
// Hindi/Hinglish surface variants, negation markers, duration patterns,
// and the cue lists used for speaker, diagnosis and advice detection.
//
// Tables are ordered slices rather than maps so that extractors that
// emit results in "lexicon order" stay deterministic across runs.
// Variants are plain substrings (duration patterns are the only regular
// expressions). Variant sets of different canonical entries may overlap;
// that is an accepted recall/precision tradeoff of substring matching,
// not an error.
package lexicon

import (
	"regexp"
	"strings"
)

// Entry maps one canonical term to its surface-form variants.
// The canonical string itself always counts as a mention even when it
// is not repeated in Variants.
type Entry struct {
	Canonical string
	Variants  []string
}

// Symptoms lists every symptom the pipeline can recognize.
var Symptoms = []Entry{
	{"बुखार", []string{"बुखार", "बुख़ार", "फीवर", "fever", "तेज बुखार", "तेज़ बुखार"}},
	{"सिर दर्द", []string{"सिर दर्द", "सिरदर्द", "सर दर्द", "सर में दर्द", "सिर में दर्द", "headache", "हेडेक"}},
	{"खांसी", []string{"खांसी", "खाँसी", "कफ", "cough", "खांस"}},
	{"जुकाम", []string{"जुकाम", "ज़ुकाम", "सर्दी", "नजला", "नज़ला", "cold"}},
	{"गले में खराश", []string{"गले में खराश", "गला खराब", "गले में दर्द", "गला दर्द", "खराश"}},
	{"कमजोरी", []string{"कमजोरी", "कमज़ोरी", "वीकनेस", "weakness", "थकान", "थकावट"}},
	{"पेट दर्द", []string{"पेट दर्द", "पेट में दर्द", "पेट दुख", "stomach pain"}},
	{"उल्टी", []string{"उल्टी", "उलटी", "वोमिटिंग", "vomiting", "जी मिचला", "मतली"}},
	{"दस्त", []string{"दस्त", "लूज मोशन", "लूज़ मोशन", "loose motion", "डायरिया", "पतले दस्त"}},
	{"चक्कर", []string{"चक्कर", "सिर घूम", "dizziness"}},
	{"सांस में तकलीफ", []string{"सांस में तकलीफ", "सांस लेने में तकलीफ", "सांस फूल", "साँस फूल", "सांस चढ़"}},
	{"बदन दर्द", []string{"बदन दर्द", "शरीर में दर्द", "बॉडी पेन", "body pain", "हाथ पैर दर्द"}},
	{"सीने में दर्द", []string{"सीने में दर्द", "छाती में दर्द", "chest pain"}},
	{"खुजली", []string{"खुजली", "itching", "खाज"}},
	{"नींद नहीं आती", []string{"नींद नहीं आती", "नींद नहीं आ", "अनिद्रा"}},
}

// Negations are the markers searched for inside the negation window
// around a symptom mention.
var Negations = []string{
	"नहीं",
	"नही",
	"बिल्कुल नहीं",
	"कभी नहीं",
	"no ",
	"not ",
}

// Locations lists canonical body locations.
var Locations = []Entry{
	{"सिर", []string{"सिर", "सर", "माथा", "माथे"}},
	{"पेट", []string{"पेट"}},
	{"गला", []string{"गला", "गले"}},
	{"छाती", []string{"छाती", "सीना", "सीने"}},
	{"कमर", []string{"कमर"}},
	{"पीठ", []string{"पीठ"}},
	{"हाथ", []string{"हाथ", "बांह", "बाँह"}},
	{"पैर", []string{"पैर", "टांग", "घुटने", "घुटना"}},
	{"आंख", []string{"आंख", "आँख", "आंखों", "आँखों"}},
	{"कान", []string{"कान"}},
}

// DurationPatterns match spoken duration phrases such as "तीन दिन से",
// "3 हफ्ते से" or "परसों से". The full match is kept verbatim as the
// symptom's duration.
var DurationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*(?:दिन|दिनों|हफ्ते|हफ्तों|सप्ताह|महीने|महीनों|घंटे|घंटों|साल)\s*से`),
	regexp.MustCompile(`(?:एक|दो|तीन|चार|पांच|पाँच|छह|छः|सात|आठ|नौ|दस|पंद्रह|बीस)\s*(?:दिन|दिनों|हफ्ते|हफ्तों|सप्ताह|महीने|महीनों|घंटे|घंटों)\s*से`),
	regexp.MustCompile(`(?:आज|कल|परसों|नरसों)\s*(?:सुबह|दोपहर|शाम|रात)?\s*से`),
	regexp.MustCompile(`(?:सुबह|दोपहर|शाम|रात)\s*से`),
	regexp.MustCompile(`(?:कई|कुछ)\s*(?:दिन|दिनों|हफ्तों|महीनों)\s*से`),
}

// Medications lists canonical drug names with spelling variants and
// common brand names. Matching is raw substring search, so a variant may
// fire inside an unrelated word; known limitation, kept deliberately.
var Medications = []Entry{
	{"पैरासिटामोल", []string{"पैरासिटामोल", "पेरासिटामोल", "पैरासिटामॉल", "paracetamol", "क्रोसिन", "crocin", "डोलो", "dolo"}},
	{"आइबुप्रोफेन", []string{"आइबुप्रोफेन", "इबुप्रोफेन", "ibuprofen", "ब्रुफेन", "brufen"}},
	{"एज़िथ्रोमाइसिन", []string{"एज़िथ्रोमाइसिन", "एजिथ्रोमाइसिन", "azithromycin", "एज़ी", "azee"}},
	{"सेट्रिज़िन", []string{"सेट्रिज़िन", "सिट्रिजिन", "cetirizine", "सिट्राजीन"}},
	{"एंटासिड", []string{"एंटासिड", "antacid", "डाइजीन", "digene", "जेलुसिल", "gelusil"}},
	{"ओआरएस", []string{"ओआरएस", "ors", "इलेक्ट्रोल", "electral"}},
	{"विटामिन", []string{"विटामिन", "vitamin", "मल्टीविटामिन", "multivitamin"}},
	{"एंटीबायोटिक", []string{"एंटीबायोटिक", "antibiotic", "एंटीबॉयोटिक"}},
	{"कफ सिरप", []string{"कफ सिरप", "cough syrup", "सिरप", "बेनाड्रिल", "benadryl"}},
}

// FillerLines are transcript lines carrying no clinical content:
// greetings, acknowledgements, audio checks. Longer phrases first so the
// strip-and-check pass removes them before their substrings.
var FillerLines = []string{
	"आवाज आ रही है",
	"आवाज़ आ रही है",
	"आवाज नहीं आ रही",
	"सुनाई दे रहा है",
	"हेलो",
	"हैलो",
	"hello",
	"जी",
	"हाँ",
	"हां",
	"ठीक है",
	"अच्छा",
	"समझ गया",
	"समझ गयी",
	"प्रोफाइल",
	"test",
	"testing",
}

// DoctorCues are strong clinical/procedural signals; their presence
// labels an utterance as doctor speech regardless of other cues.
var DoctorCues = []string{
	"मैं आपकी जांच", "मैं आपकी जाँच", "जांच कर रहा", "जाँच कर रहा",
	"दवा", "लेनी है", "लें", "लिख रहा", "लिख देता",
	"केस", "निदान", "डायग्नोसिस", "diagnosis", "लगता है",
	"रिपोर्ट", "टेस्ट करवा",
}

// DoctorImperatives are advisory/prescriptive phrasings checked after
// DoctorCues.
var DoctorImperatives = []string{
	"खाएं", "न खाएं", "पीएं", "मत", "परहेज",
	"आराम", "बचें", "लेते रहें", "कम करें", "ज्यादा न",
	"गरारे", "भाप लें",
}

// PatientCues are complaint phrasings, the lowest-priority tier.
var PatientCues = []string{
	"मुझे", "मेरे", "मेरी", "दर्द", "तकलीफ",
	"हो रहा", "हो रही", "है", "नहीं है", "नहीं हुई",
}

// DiagnosisCues are single words that mark a doctor statement as
// diagnostic.
var DiagnosisCues = []string{
	"निदान",
	"डायग्नोसिस",
	"diagnosis",
	"रोग",
	"बीमारी",
	"बिमारी",
	"समस्या",
	"इन्फेक्शन",
	"infection",
}

// DiagnosisPhrases are multi-word templates; a span is diagnostic when
// every word of any one template occurs in it (order-independent
// substring containment, not adjacency).
var DiagnosisPhrases = [][]string{
	{"केस", "है"},
	{"केस", "लग"},
	{"आपको", "हुआ", "है"},
	{"आपको", "इन्फेक्शन", "है"},
	{"आपको", "बीमारी", "है"},
	{"आपको", "बिमारी", "है"},
	{"रोग", "है"},
	{"इन्फेक्शन", "है"},
	{"हो", "सकता", "है"},
	{"लगता", "है"},
}

// AdviceCues flag a doctor utterance as advice/instruction.
var AdviceCues = []string{
	// medication / actions
	"लें", "ले", "लेनी", "लेते",
	"करें", "करे", "करना",
	// restrictions
	"मत", "न", "ना",
	// diet & fluids
	"खाएं", "पीएं", "पियो", "पिए", "पानी",
	// rest / lifestyle
	"आराम", "परहेज", "बचें",
	// timing / dosage
	"सुबह", "दोपहर", "शाम", "रात",
	"दिन में", "खाली पेट", "खाने के बाद",
	// follow-up
	"फिर आ", "दिखा", "मिलें",
}

// HindiNumberWords maps spoken Hindi numbers to values, used for age
// extraction ("पैंतीस साल").
var HindiNumberWords = map[string]int{
	"एक": 1, "दो": 2, "तीन": 3, "चार": 4, "पांच": 5, "पाँच": 5,
	"छह": 6, "सात": 7, "आठ": 8, "नौ": 9, "दस": 10,
	"ग्यारह": 11, "बारह": 12, "तेरह": 13, "चौदह": 14, "पंद्रह": 15,
	"सोलह": 16, "सत्रह": 17, "अठारह": 18, "उन्नीस": 19, "बीस": 20,
	"इक्कीस": 21, "बाईस": 22, "तेईस": 23, "चौबीस": 24, "पच्चीस": 25,
	"छब्बीस": 26, "सत्ताईस": 27, "अट्ठाईस": 28, "उनतीस": 29, "तीस": 30,
	"इकतीस": 31, "बत्तीस": 32, "तैंतीस": 33, "चौंतीस": 34, "पैंतीस": 35,
	"छत्तीस": 36, "सैंतीस": 37, "अड़तीस": 38, "उनतालीस": 39, "चालीस": 40,
	"पैंतालीस": 45, "पचास": 50, "पचपन": 55, "साठ": 60, "पैंसठ": 65,
	"सत्तर": 70, "पचहत्तर": 75, "अस्सी": 80, "पचासी": 85, "नब्बे": 90,
}

// MentionedIn reports whether the entry is mentioned in text, counting
// the canonical form itself as a variant.
func (e Entry) MentionedIn(text string) bool {
	for _, v := range e.Variants {
		if v != "" && strings.Contains(text, v) {
			return true
		}
	}
	return strings.Contains(text, e.Canonical)
}
