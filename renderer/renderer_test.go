package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/rentvest"
	"github.com/etnz/rentvest/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// countTables parses markdown as GitHub flavored markdown and counts its tables.
func countTables(t *testing.T, markdown string) int {
	t.Helper()
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := gm.Parser().Parse(text.NewReader([]byte(markdown)))
	var n int
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && node.Kind() == extast.KindTable {
			n++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return n
}

func newProperty(t *testing.T, cfg rentvest.PropertyConfig) *rentvest.Property {
	t.Helper()
	p, err := rentvest.NewProperty(cfg)
	if err != nil {
		t.Fatalf("NewProperty() unexpected error: %v", err)
	}
	return p
}

func buyToLet() rentvest.PropertyConfig {
	return rentvest.PropertyConfig{
		Price:        800_000,
		Deposit:      100_000,
		BuyingCost:   30_000,
		GrowthRate:   4,
		InterestRate: 6,
		Rent:         rentvest.WeeklyToMonthly(650),
		Strategy:     rentvest.BuyToLet,
	}
}

func TestPropertyMarkdown(t *testing.T) {
	p := newProperty(t, buyToLet())
	r, err := rentvest.NewPropertyReport(p, 3, rentvest.ReportOptions{
		Name:        "unit",
		Start:       date.New(2025, 7, 1),
		Inflation:   3,
		IndexReturn: 7,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := PropertyMarkdown(r)

	for _, want := range []string{"# Property Report for unit", "2028-07-01", "$800,000.00", "Advantage", "n/a"} {
		if !strings.Contains(got, want) {
			t.Errorf("PropertyMarkdown() misses %q in:\n%s", want, got)
		}
	}
	if n := countTables(t, got); n != 3 {
		t.Errorf("PropertyMarkdown() has %d tables, want 3:\n%s", n, got)
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	first := newProperty(t, buyToLet())
	second := newProperty(t, buyToLet())
	pf, err := rentvest.NewPortfolio(
		[]*rentvest.Property{first, second},
		[]int{0, 1},
		[]float64{0, 1},
		rentvest.PortfolioConfig{Cash: 150_000, MonthlyIncome: 12_000, MonthlyLivingExpenses: 4_000, MonthlyLivingRent: 2_500},
	)
	if err != nil {
		t.Fatal(err)
	}
	r, err := rentvest.NewPortfolioReport(pf, 5, []string{"first"}, rentvest.ReportOptions{})
	if err != nil {
		t.Fatal(err)
	}
	got := PortfolioMarkdown(r)

	for _, want := range []string{"# Portfolio Report", "first", "#2", "## Warnings", "Year 5"} {
		if !strings.Contains(got, want) {
			t.Errorf("PortfolioMarkdown() misses %q in:\n%s", want, got)
		}
	}
	if n := countTables(t, got); n != 2 {
		t.Errorf("PortfolioMarkdown() has %d tables, want 2:\n%s", n, got)
	}
}
