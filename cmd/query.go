package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rentvest"
	"github.com/google/subcommands"
)

type queryCmd struct {
	years    int
	property int
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from a report with JSONPath" }
func (*queryCmd) Usage() string {
	return `rvs query [-years <n>] [-property <index>] <jsonpath>

Evaluates a JSONPath expression against the JSON portfolio report, or the
report of a single property with -property, and prints the JSON result.

  rvs query '$.series[10].netWorth'
  rvs query -property 0 '$.years[5].equity'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "simulated years, defaults to the scenario horizon")
	f.IntVar(&c.property, "property", -1, "0-based index of a property to query alone, instead of the portfolio")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "query expects exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	s, err := DecodeScenario()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var report any
	if c.property >= 0 {
		report, err = s.PropertyReport(c.property, horizon(s, c.years))
	} else {
		report, err = s.PortfolioReport(horizon(s, c.years))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simulating: %v\n", err)
		return subcommands.ExitFailure
	}

	res, err := rentvest.Query(report, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := printJSON(res); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
