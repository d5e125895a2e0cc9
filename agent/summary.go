// Package agent produces a natural-language briefing of the treasury
// position through Gemini. It is a one-way collaborator: it consumes the
// rendered monthly aggregates and produces free text, nothing flows back
// into the core.
package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a corporate treasury analyst for a multi-entity
group operating in HKD, RMB and USD. You receive projected cash flow
aggregates: monthly inflow/outflow/net figures, closing balances, a safety
threshold and the active stress scenario. Write a short briefing for the
CFO: liquidity trend, months where the balance approaches or crosses the
safety threshold, and the main drivers. Be factual, cite figures from the
data, do not invent numbers.`

// Summarizer asks a model to brief the projection.
type Summarizer struct {
	Model string
}

// NewSummarizer returns a Summarizer on the default model.
func NewSummarizer() *Summarizer {
	return &Summarizer{Model: defaultModel}
}

// Summarize sends the rendered report to the model and returns its briefing.
func (s *Summarizer) Summarize(ctx context.Context, client *genai.Client, report string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	resp, err := client.Models.GenerateContent(ctx, s.Model, genai.Text(report), config)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("model %s returned an empty briefing", s.Model)
	}
	return text, nil
}
