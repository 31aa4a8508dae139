package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const scenario = `{
  "name": "first steps",
  "start": "2025-07-01",
  "cash": 150000,
  "monthlyIncome": 12000,
  "monthlyLivingExpenses": 4000,
  "monthlyLivingRent": 2500,
  "years": 5,
  "properties": [
    {
      "name": "unit",
      "strategy": "buy-to-let",
      "price": 800000, "deposit": 100000, "buyingCost": 30000,
      "growthRate": 4, "interestRate": 6, "weeklyRent": 650
    }
  ]
}`

// withScenario points the global flags to a temporary scenario file with content.
func withScenario(t *testing.T, content string) {
	t.Helper()
	name := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	oldFile, oldCur := *scenarioFile, *defaultCurrency
	*scenarioFile, *defaultCurrency = name, ""
	t.Cleanup(func() { *scenarioFile, *defaultCurrency = oldFile, oldCur })
}

// run executes c with args and returns its exit status and output.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var out bytes.Buffer
	old := stdout
	stdout = &out
	t.Cleanup(func() { stdout = old })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	return c.Execute(context.Background(), f), out.String()
}

func TestDecodeScenario(t *testing.T) {
	withScenario(t, scenario)
	s, err := DecodeScenario()
	if err != nil {
		t.Fatal(err)
	}
	if s.Years != 5 || s.Currency != "AUD" {
		t.Errorf("DecodeScenario() years, currency = %d, %q, want 5, AUD", s.Years, s.Currency)
	}

	*defaultCurrency = "EUR"
	s, err = DecodeScenario()
	if err != nil {
		t.Fatal(err)
	}
	if s.Currency != "EUR" {
		t.Errorf("DecodeScenario() currency = %q, want the flag override EUR", s.Currency)
	}
	if got := horizon(s, 0); got != 5 {
		t.Errorf("horizon(s, 0) = %d, want 5", got)
	}
	if got := horizon(s, 12); got != 12 {
		t.Errorf("horizon(s, 12) = %d, want 12", got)
	}
}

func TestDecodeScenarioErrors(t *testing.T) {
	withScenario(t, `{"properties": [], "unknown": 1}`)
	if _, err := DecodeScenario(); err == nil {
		t.Error("DecodeScenario() of an invalid file should fail")
	}
	*scenarioFile = filepath.Join(t.TempDir(), "missing.json")
	if _, err := DecodeScenario(); err == nil {
		t.Error("DecodeScenario() of a missing file should fail")
	}
}

func TestExtensionEnv(t *testing.T) {
	withScenario(t, scenario)
	*defaultCurrency = "EUR"
	env := extensionEnv()
	for _, want := range []string{
		EnvScenarioFile + "=" + *scenarioFile,
		EnvCurrency + "=EUR",
		EnvVerbose + "=false",
	} {
		if !slices.Contains(env, want) {
			t.Errorf("extensionEnv() does not contain %q", want)
		}
	}
}

func TestPropertyJSON(t *testing.T) {
	withScenario(t, scenario)
	status, out := run(t, &propertyCmd{}, "-json", "-years", "3")
	if status != subcommands.ExitSuccess {
		t.Fatalf("property exit status = %v", status)
	}
	var got struct {
		Name     string           `json:"name"`
		Strategy string           `json:"strategy"`
		Years    []map[string]any `json:"years"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Name != "unit" || got.Strategy != "buy-to-let" || len(got.Years) != 4 {
		t.Errorf("property report = %q, %q with %d years, want unit, buy-to-let with 4 years", got.Name, got.Strategy, len(got.Years))
	}
}

func TestPropertyUnknownIndex(t *testing.T) {
	withScenario(t, scenario)
	if status, _ := run(t, &propertyCmd{}, "-i", "2"); status != subcommands.ExitFailure {
		t.Errorf("property -i 2 exit status = %v, want failure", status)
	}
}

func TestPortfolioJSON(t *testing.T) {
	withScenario(t, scenario)
	status, out := run(t, &portfolioCmd{}, "-json")
	if status != subcommands.ExitSuccess {
		t.Fatalf("portfolio exit status = %v, output %s", status, out)
	}
	var got struct {
		Feasible bool             `json:"feasible"`
		Holdings []map[string]any `json:"holdings"`
		Series   []map[string]any `json:"series"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if !got.Feasible || len(got.Holdings) != 1 || len(got.Series) != 6 {
		t.Errorf("portfolio report feasible=%v with %d holdings and %d years, want true, 1, 6", got.Feasible, len(got.Holdings), len(got.Series))
	}
}

func TestQuery(t *testing.T) {
	withScenario(t, scenario)

	status, out := run(t, &queryCmd{}, "$.series[2].year")
	if status != subcommands.ExitSuccess {
		t.Fatalf("query exit status = %v", status)
	}
	if strings.TrimSpace(out) != "2" {
		t.Errorf("query $.series[2].year = %q, want 2", out)
	}

	status, out = run(t, &queryCmd{}, "-property", "0", "$.strategy")
	if status != subcommands.ExitSuccess {
		t.Fatalf("query -property exit status = %v", status)
	}
	if strings.TrimSpace(out) != `"buy-to-let"` {
		t.Errorf("query -property 0 $.strategy = %q, want \"buy-to-let\"", out)
	}

	if status, _ := run(t, &queryCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("query without a path exit status = %v, want usage error", status)
	}
}

func TestTopicList(t *testing.T) {
	status, out := run(t, &topicCmd{}, "-l")
	if status != subcommands.ExitSuccess {
		t.Fatalf("topic -l exit status = %v", status)
	}
	if !strings.Contains(out, "offset") {
		t.Errorf("topic -l = %q, want it to list offset", out)
	}
}

func TestTopicUnknown(t *testing.T) {
	if status, _ := run(t, &topicCmd{}, "no-such-topic"); status != subcommands.ExitFailure {
		t.Errorf("topic no-such-topic exit status = %v, want failure", status)
	}
}
