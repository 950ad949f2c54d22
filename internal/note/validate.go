// Package note turns a structured consultation report into a prose OPD
// note through an OpenAI-compatible chat model, under a strict
// no-invented-facts contract: the model may only restate what the
// structured JSON contains, and both input and output are validated.
package note

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxPayloadBytes caps the structured JSON accepted for formatting.
const maxPayloadBytes = 50000

// requiredListFields must all be present and list-typed in any payload;
// consumers reject anything else.
var requiredListFields = []string{"symptoms", "negatives", "medications", "diagnosis", "advice"}

// ValidatePayload enforces the structured-report contract on a raw JSON
// payload: object-shaped, bounded size, and the five list fields
// present as JSON arrays.
func ValidatePayload(raw []byte) error {
	if len(raw) > maxPayloadBytes {
		return fmt.Errorf("payload too large: %d bytes (limit %d)", len(raw), maxPayloadBytes)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("payload is not a JSON object: %w", err)
	}

	for _, name := range requiredListFields {
		value, ok := fields[name]
		if !ok {
			return fmt.Errorf("missing required field %q", name)
		}
		trimmed := strings.TrimSpace(string(value))
		if !strings.HasPrefix(trimmed, "[") {
			return fmt.Errorf("field %q must be a list", name)
		}
	}
	return nil
}

// hallucination heuristics: words in the output that cannot be traced
// back to the input suggest the model invented facts.
var (
	demographicTerms = []string{"year old", "years old", "male", "female", "aged"}
	diagnosisTerms   = []string{"viral", "bacterial", "infection", "influenza", "respiratory"}
	adviceTerms      = []string{"hydrat", "follow-up", "monitor", "return", "call", "if worsens"}
)

// checkOutput scans the generated note for content absent from the
// structured input. Suspected inventions are returned as warnings; they
// do not fail the generation, since substring heuristics over
// translated text have false positives both ways.
func checkOutput(output string, input []byte) []string {
	inputStr := strings.ToLower(string(input))
	outputStr := strings.ToLower(output)

	var fields struct {
		Diagnosis []string `json:"diagnosis"`
		Advice    []string `json:"advice"`
	}
	_ = json.Unmarshal(input, &fields)

	var warnings []string

	for _, term := range demographicTerms {
		if strings.Contains(outputStr, term) && !strings.Contains(inputStr, term) {
			warnings = append(warnings, fmt.Sprintf("invented demographic: %q", term))
		}
	}

	if len(fields.Diagnosis) > 0 {
		diagnosisStr := strings.ToLower(strings.Join(fields.Diagnosis, " "))
		for _, term := range diagnosisTerms {
			if strings.Contains(outputStr, term) &&
				!strings.Contains(diagnosisStr, term) && !strings.Contains(inputStr, term) {
				warnings = append(warnings, fmt.Sprintf("invented diagnosis detail: %q", term))
			}
		}
	}

	if len(fields.Advice) > 0 {
		adviceStr := strings.ToLower(strings.Join(fields.Advice, " "))
		for _, term := range adviceTerms {
			if strings.Contains(outputStr, term) && !strings.Contains(adviceStr, term) {
				warnings = append(warnings, fmt.Sprintf("invented advice: %q", term))
			}
		}
	}

	return warnings
}
