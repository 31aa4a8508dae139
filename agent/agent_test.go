package agent

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/rentvest"
	"google.golang.org/genai"
)

const scenario = `{
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

func newScenario(t *testing.T) *rentvest.Scenario {
	t.Helper()
	s, err := rentvest.DecodeScenario(strings.NewReader(scenario))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func call(t *testing.T, lib Library, name string, args map[string]any) *genai.FunctionResponse {
	t.Helper()
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
	if resp.ID != "1" || resp.Name != name {
		t.Errorf("response ID, Name = %q, %q, want %q, %q", resp.ID, resp.Name, "1", name)
	}
	return resp
}

func TestAnalystLibrary(t *testing.T) {
	a := NewAnalyst(newScenario(t))
	if len(a.Config.Tools[0].FunctionDeclarations) != 4 {
		t.Fatalf("Analyst has %d functions, want 4", len(a.Config.Tools[0].FunctionDeclarations))
	}

	testCases := []struct {
		name    string
		args    map[string]any
		want    string // in the output
		wantErr string // in the error
	}{
		{name: "PortfolioReport", args: map[string]any{"years": 3.0}, want: "# Portfolio Report"},
		{name: "PropertyReport", args: map[string]any{"index": 0.0}, want: "Property Report for unit"},
		{name: "PropertyReport", args: map[string]any{"index": 3.0}, wantErr: "no property 3"},
		{name: "Query", args: map[string]any{"path": "$.series[0].year"}, want: "0"},
		{name: "Query", args: map[string]any{"years": "ten", "path": "$"}, wantErr: "not a number"},
		{name: "Query", args: map[string]any{}, wantErr: "missing argument"},
		{name: "Topic", args: map[string]any{"name": "offset"}, want: "# Offset account"},
		{name: "Nope", args: nil, wantErr: "unknown function"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(t, a.Library, tc.name, tc.args)
			if tc.wantErr != "" {
				got, _ := resp.Response["error"].(string)
				if !strings.Contains(got, tc.wantErr) {
					t.Errorf("error = %q, want it to contain %q", got, tc.wantErr)
				}
				return
			}
			if errMsg, ok := resp.Response["error"]; ok {
				t.Fatalf("unexpected error: %v", errMsg)
			}
			got, _ := resp.Response["output"].(string)
			if !strings.Contains(got, tc.want) {
				t.Errorf("output = %q, want it to contain %q", got, tc.want)
			}
		})
	}
}

func TestFacilitatorDeclaresExperts(t *testing.T) {
	experts := []*Expert{NewEconomist(), NewAnalyst(newScenario(t))}
	f := newFacilitator(experts...)
	decls := f.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Economist" || decls[1].Name != "Analyst" {
		t.Errorf("facilitator declarations = %v, want Economist and Analyst", decls)
	}
	resp := call(t, f.Library, "Analyst", map[string]any{"question": 42})
	if _, ok := resp.Response["error"]; !ok {
		t.Error("asking with a non string question should fail")
	}
}

func TestExpertNotStarted(t *testing.T) {
	if _, err := NewEconomist().Ask(context.Background(), &genai.Part{Text: "rates?"}); err == nil {
		t.Error("Ask() on an expert not started should fail")
	}
}

func TestAdvisorEmptyReport(t *testing.T) {
	if _, err := NewAdvisor(nil, "").Explain(context.Background(), "  ", ""); err == nil {
		t.Error("Explain() of an empty report should fail")
	}
}

func TestAgentRun(t *testing.T) {
	var out strings.Builder
	a := New(&out, strings.NewReader("\nhow much cash in year 3?\nquit\nnever asked\n"))
	a.Render = strings.ToUpper
	var asked []string
	a.ask = func(_ context.Context, q string) (string, error) {
		asked = append(asked, q)
		return "answer to " + q, nil
	}

	if err := a.Run(context.Background(), nil, "  is it feasible?  "); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	want := []string{"is it feasible?", "how much cash in year 3?"}
	if !slices.Equal(asked, want) {
		t.Errorf("asked %q, want %q", asked, want)
	}
	if got := out.String(); !strings.Contains(got, "ANSWER TO IS IT FEASIBLE?") || !strings.Contains(got, a.Greeting) {
		t.Errorf("output = %q, want the greeting and the rendered answers", got)
	}
}

func TestAgentRunStopsOnError(t *testing.T) {
	a := New(io.Discard, strings.NewReader("first\nsecond\n"))
	a.ask = func(context.Context, string) (string, error) { return "", errors.New("quota exceeded") }
	if err := a.Run(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "quota") {
		t.Errorf("Run() error = %v, want the ask error", err)
	}
}
