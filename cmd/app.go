// Package cmd implements the rvs command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/etnz/rentvest"
	"github.com/google/subcommands"
)

// Commands are the rvs subcommands, main registers them on a commander.
var Commands = []subcommands.Command{
	&propertyCmd{},
	&portfolioCmd{},
	&queryCmd{},
	&explainCmd{},
	&assistCmd{},
	&topicCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	scenarioFile    = flag.String("scenario", envOr(EnvScenarioFile, "scenario.json"), "Path to the JSON scenario file, defaults to $"+EnvScenarioFile)
	defaultCurrency = flag.String("currency", os.Getenv(EnvCurrency), "Currency of the reports, overrides the scenario one, defaults to $"+EnvCurrency)
	// Verbose prints the engine diagnostics, like negative gearing or missing equity.
	Verbose = flag.Bool("v", envBool(EnvVerbose), "Verbose output, defaults to $"+EnvVerbose)
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

// Setup applies the global flags, main calls it once flags are parsed.
func Setup() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// DecodeScenario decodes the scenario from the app scenario file.
func DecodeScenario() (*rentvest.Scenario, error) {
	f, err := os.Open(*scenarioFile)
	if err != nil {
		return nil, fmt.Errorf("could not open scenario file %q: %w", *scenarioFile, err)
	}
	defer f.Close()

	s, err := rentvest.DecodeScenario(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode scenario file %q: %w", *scenarioFile, err)
	}
	if *defaultCurrency != "" {
		s.Currency = *defaultCurrency
	}
	return s, nil
}

// horizon returns years, or the scenario horizon when years is not positive.
func horizon(s *rentvest.Scenario, years int) int {
	if years > 0 {
		return years
	}
	return s.Years
}
