// Package insight asks a text-generation model for a short prose review of
// recent production entries.
//
// The model is an external collaborator: it receives a data slice and returns
// opaque prose. Any failure degrades to a fixed fallback message and never
// touches ledger state, so callers may fire and forget.
package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/etnz/millbook"
)

const model = "gemini-2.5-flash"

// Fallback is the text returned whenever the insight request fails for any
// reason. The ledger is never affected by such a failure.
const Fallback = "Unable to generate insights at the moment. Please try again later."

const instruction = `You are reviewing the production log of a small cone-winding mill.
The following JSON lists the most recent production entries: drum counter, stock
weighings in grams, cones produced, rate per kg, and the derived weight and amount.
Summarize the production trend, point out unusual days (negative consumption,
outlier weights), and keep it under 120 words of plain prose.`

// Generator produces a prose summary for a slice of entries. It is the
// capability the CLI injects, so everything else stays testable offline.
type Generator interface {
	Summarize(ctx context.Context, entries []millbook.ProductionEntry) string
}

// Analyst is the Gemini-backed Generator.
type Analyst struct {
	client *genai.Client
	model  string
}

// NewAnalyst creates the Gemini client. Credentials come from the
// environment (GEMINI_API_KEY), as the genai SDK documents.
func NewAnalyst(ctx context.Context) (*Analyst, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini client: %w", err)
	}
	return &Analyst{client: client, model: model}, nil
}

// Summarize sends the entries with the fixed analysis instruction and returns
// the model's prose, or Fallback on any failure. The returned text is opaque,
// nothing in it is parsed or validated.
func (a *Analyst) Summarize(ctx context.Context, entries []millbook.ProductionEntry) string {
	prompt, err := buildPrompt(entries)
	if err != nil {
		return Fallback
	}

	chat, err := a.client.Chats.Create(ctx, a.model, nil, nil)
	if err != nil {
		return Fallback
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return Fallback
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Fallback
	}
	return resp.Candidates[0].Content.Parts[0].Text
}

// buildPrompt joins the fixed instruction with the entries payload.
func buildPrompt(entries []millbook.ProductionEntry) (string, error) {
	if entries == nil {
		entries = []millbook.ProductionEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return instruction + "\n\n" + string(payload), nil
}

var _ Generator = (*Analyst)(nil)
