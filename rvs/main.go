// Command rvs simulates residential property investments funded with a mortgage.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rentvest/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("rvs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Setup()

	if name := flag.Arg(0); name != "" && !isCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func isCommand(name string) bool {
	if name == "help" || name == "flags" {
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	years := predict.Nothing
	index := predict.Nothing
	sub := map[string]*complete.Command{
		"property":  {Flags: map[string]complete.Predictor{"i": index, "years": years, "json": predict.Nothing}},
		"portfolio": {Flags: map[string]complete.Predictor{"years": years, "json": predict.Nothing}},
		"query":     {Flags: map[string]complete.Predictor{"years": years, "property": index}},
		"explain":   {Flags: map[string]complete.Predictor{"model": predict.Set{"gemini-2.5-pro", "gemini-2.5-flash"}, "years": years, "property": index}},
		"assist":    {},
		"topic": {
			Flags: map[string]complete.Predictor{"l": predict.Nothing},
			Args:  predict.Set{"readme", "strategies", "offset", "portfolio", "scenario", "reports"},
		},
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"scenario": predict.Files("*.json"),
			"currency": predict.Set{"AUD", "EUR", "USD", "GBP", "NZD"},
			"v":        predict.Nothing,
		},
	}
}
