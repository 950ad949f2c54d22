package note

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a medical documentation assistant. Your ONLY job is to convert the Hindi medical data below into a professional English OPD note.

RULES:
1. Every sentence you write MUST come from the JSON. If the JSON has no age, do not write an age. If a symptom has no duration, do not write a duration.
2. Do NOT invent patient demographics, symptom details, differential diagnoses, medication instructions, follow-up plans, or medical reasoning.
3. Translate Hindi terms to plain English medical terminology without expanding them (बुखार is "Fever", not "high fever").
4. Use these sections only when data exists: Chief Complaint, Symptoms, Negative Findings, Current Medications, Assessment, Plan.
5. If you cannot comply, output exactly: INVALID OUTPUT`

// Formatter renders OPD notes through an OpenAI-compatible chat
// endpoint (a local Ollama server with an OpenAI facade works the same
// way).
type Formatter struct {
	client *openai.Client
	model  string
}

// NewFormatter builds a Formatter. baseURL may be empty for the default
// OpenAI endpoint.
func NewFormatter(apiKey, baseURL, model string) *Formatter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Formatter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Generate validates the structured payload, asks the model for the
// note, and screens the result for invented facts. Suspected inventions
// are appended as a visible warning block rather than silently kept.
func (f *Formatter) Generate(ctx context.Context, structured []byte) (string, error) {
	if err := ValidatePayload(structured); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("INPUT JSON (your only source of information):\n%s\n\nGenerate a concise OPD note. Use ONLY information from the JSON above.", structured)

	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("note generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("note generation returned no choices")
	}

	output := strings.TrimSpace(resp.Choices[0].Message.Content)
	if output == "" {
		return "", fmt.Errorf("note generation returned empty output")
	}
	if strings.Contains(output, "INVALID OUTPUT") || strings.Contains(output, "HALLUCINATION DETECTED") {
		return "", fmt.Errorf("model flagged a documentation rule violation")
	}

	if warnings := checkOutput(output, structured); len(warnings) > 0 {
		var b strings.Builder
		b.WriteString(output)
		b.WriteString("\n\nWARNING: possible hallucinations detected:\n")
		for _, warning := range warnings {
			b.WriteString("  - ")
			b.WriteString(warning)
			b.WriteString("\n")
		}
		b.WriteString("Verify all information against the original transcript.")
		return b.String(), nil
	}

	return output, nil
}
