package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rentvest/renderer"
	"github.com/google/subcommands"
)

type portfolioCmd struct {
	years int
	json  bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "simulate all the properties together" }
func (*portfolioCmd) Usage() string {
	return `rvs portfolio [-years <n>] [-json]

Simulates the household with all the properties of the scenario, bought on
their year and funded from the shared cash pool, then prints the yearly
series and the feasibility warnings.

The command fails when the plan is not feasible, so that scripts can test it.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "simulated years, defaults to the scenario horizon")
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeScenario()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	r, err := s.PortfolioReport(horizon(s, c.years))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simulating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		if err := printJSON(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.PortfolioMarkdown(r))
	}
	if !r.Feasible() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
