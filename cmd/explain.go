package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rentvest/agent"
	"github.com/etnz/rentvest/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type explainCmd struct {
	model    string
	years    int
	property int
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "explain a report in plain language" }
func (*explainCmd) Usage() string {
	return `rvs explain [-model <name>] [-years <n>] [-property <index>] [<question>]

Asks Gemini to explain the portfolio report, or the report of a single
property with -property. The optional question focuses the explanation.

The Gemini client reads its credentials from the environment, for instance
GOOGLE_API_KEY.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", agent.DefaultModel, "Gemini model")
	f.IntVar(&c.years, "years", 0, "simulated years, defaults to the scenario horizon")
	f.IntVar(&c.property, "property", -1, "0-based index of a property to explain alone, instead of the portfolio")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeScenario()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var report string
	if c.property >= 0 {
		r, err := s.PropertyReport(c.property, horizon(s, c.years))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error simulating property: %v\n", err)
			return subcommands.ExitFailure
		}
		report = renderer.PropertyMarkdown(r)
	} else {
		r, err := s.PortfolioReport(horizon(s, c.years))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error simulating portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		report = renderer.PortfolioMarkdown(r)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	text, err := agent.NewAdvisor(client, c.model).Explain(ctx, report, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(text)
	return subcommands.ExitSuccess
}
