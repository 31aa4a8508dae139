package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rentvest/renderer"
	"github.com/google/subcommands"
)

type propertyCmd struct {
	index int
	years int
	json  bool
}

func (*propertyCmd) Name() string     { return "property" }
func (*propertyCmd) Synopsis() string { return "simulate a single property held alone" }
func (*propertyCmd) Usage() string {
	return `rvs property [-i <index>] [-years <n>] [-json]

Simulates the property at index in the scenario, as if it was the only one,
and prints its yearly position: value, loan, offset, equity and cash flows.

When the scenario sets an inflation rate or an index return, the report ends
with the comparison against an index fund fed with the same cash.
`
}

func (c *propertyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "0-based index of the property in the scenario")
	f.IntVar(&c.years, "years", 0, "simulated years, defaults to the scenario horizon")
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
}

func (c *propertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeScenario()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	r, err := s.PropertyReport(c.index, horizon(s, c.years))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simulating property: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		if err := printJSON(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PropertyMarkdown(r))
	return subcommands.ExitSuccess
}
