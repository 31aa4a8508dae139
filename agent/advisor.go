package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/rentvest/docs"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// Advisor asks a model for a plain language explanation of a report.
type Advisor struct {
	client *genai.Client
	model  string
}

// NewAdvisor returns an Advisor using client and model, DefaultModel if empty.
func NewAdvisor(client *genai.Client, model string) *Advisor {
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{client: client, model: model}
}

// Explain returns a markdown narrative of report, a rendered markdown report.
// The question, if any, focuses the explanation.
func (a *Advisor) Explain(ctx context.Context, report, question string) (string, error) {
	if strings.TrimSpace(report) == "" {
		return "", errors.New("nothing to explain: empty report")
	}
	manual, err := docs.GetTopic("*")
	if err != nil {
		return "", fmt.Errorf("loading documentation: %w", err)
	}

	var prompt strings.Builder
	prompt.WriteString("Here is the report to explain:\n\n")
	prompt.WriteString(report)
	if question != "" {
		fmt.Fprintf(&prompt, "\n\nFocus on this question: %s\n", question)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt.String()), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: advisorInstruction + manual}}},
	})
	if err != nil {
		return "", fmt.Errorf("asking %s: %w", a.model, err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no response from %s", a.model)
	}
	return text, nil
}

const advisorInstruction = `
You are a property investment analyst. You explain simulation reports produced by rvs
to a household that considers buying properties with a mortgage.

Stick to the figures of the report, do not invent numbers. Explain which strategy
drives the result, when the cash pool is under pressure, what the feasibility
warnings mean and how the property compares to an index fund when the report
says so. Answer in markdown, with short paragraphs.

This is not financial advice, say so in one sentence at the end.

The rvs manual follows.

`
