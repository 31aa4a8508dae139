package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"google.golang.org/genai"
)

// Agent is a chat session about a scenario, led by a facilitator that
// consults the experts.
type Agent struct {
	// Render formats the answers, they are printed as is by default.
	Render func(markdown string) string
	// Greeting is printed once, before the first question.
	Greeting    string
	Facilitator *Expert
	Experts     []*Expert

	out   io.Writer
	lines *bufio.Scanner
	// ask answers a question, nil until the chats are started.
	ask func(ctx context.Context, question string) (string, error)
}

// New creates an Agent with experts at hand. Answers are written to w and
// questions are read from r, one per line.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		Render:      func(s string) string { return s },
		Greeting:    "Ask anything about your scenario, for instance \"can I afford a second unit in 3 years?\". Type 'bye' to exit.",
		Facilitator: newFacilitator(experts...),
		Experts:     experts,
		out:         w,
		lines:       bufio.NewScanner(r),
	}
}

// Start creates the chats of the experts, then the facilitator's.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range append(slices.Clone(a.Experts), a.Facilitator) {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("starting %s: %w", e.Name, err)
		}
	}
	a.ask = a.askFacilitator
	return nil
}

func (a *Agent) askFacilitator(ctx context.Context, question string) (string, error) {
	content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, p := range content.Parts {
		b.WriteString(p.Text)
	}
	if b.Len() == 0 {
		return "", errors.New("the facilitator returned an empty answer")
	}
	return b.String(), nil
}

const prompt = "rvs> "

// farewell reports whether the user is leaving.
func farewell(s string) bool {
	switch strings.ToLower(s) {
	case "bye", "exit", "quit":
		return true
	}
	return false
}

// Run is the question and answer loop. prompts are asked first, as if typed
// by the user. It returns at the end of the input or on a farewell.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.ask == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, a.Greeting)

	for {
		fmt.Fprint(a.out, prompt)
		var question string
		switch {
		case len(prompts) > 0:
			question, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if question == "" {
				fmt.Fprintln(a.out)
				continue
			}
			fmt.Fprintln(a.out, question)
		case a.lines.Scan():
			question = strings.TrimSpace(a.lines.Text())
			if question == "" {
				continue
			}
		default:
			fmt.Fprintln(a.out)
			return a.lines.Err()
		}

		if farewell(question) {
			return nil
		}
		answer, err := a.ask(ctx, question)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.Render(answer))
	}
}
