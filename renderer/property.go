package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rentvest"
	md "github.com/nao1215/markdown"
)

// PropertyMarkdown renders a property report: the purchase, a yearly table and
// the comparison against an index fund when there is one.
func PropertyMarkdown(r *rentvest.PropertyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := r.Currency

	title := "Property Report"
	if r.Name != "" {
		title = fmt.Sprintf("Property Report for %s", r.Name)
	}
	doc.H1(title)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Strategy"), md.Bold(r.Strategy.String())},
		Rows: [][]string{
			{"Price", money(r.Price, cur)},
			{"Deposit", money(r.Deposit, cur)},
			{"Loan", money(r.Principal, cur)},
			{"Monthly Repayment", money(r.MonthlyPayment, cur)},
			{"Gearing", r.Gearing.String()},
		},
	})

	doc.H2("Year by Year")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Value", "Loan", "Offset", "Equity", "Cash Flow", "Net Position", "Avg. Return", "LVR"},
	}
	for _, y := range r.Years {
		table.Rows = append(table.Rows, []string{
			yearLabel(y.Year, y.On, !y.On.IsZero()),
			money(y.Value, cur),
			money(y.LoanLeft, cur),
			money(y.Offset, cur),
			money(y.Equity, cur),
			signed(y.YearlyCashFlow, cur),
			signed(y.NetPosition, cur),
			y.AverageReturn.String(),
			y.LoanToValue.String(),
		})
	}
	doc.Table(table)

	out := doc.String()
	if r.Comparison != nil {
		out += "\n" + ComparisonMarkdown(*r.Comparison, cur)
	}
	return out
}

// ComparisonMarkdown renders the comparison of a property against an index fund.
func ComparisonMarkdown(c rentvest.Comparison, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("Compared to an Index Fund over %d Years", c.Years))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "Nominal", "Today's Money"},
		Rows: [][]string{
			{"Property Net Position", signed(c.NetPosition, cur), signed(c.RealNetPosition, cur)},
			{"Index Fund Gain", signed(c.IndexGain, cur), signed(c.RealIndexGain, cur)},
			{"Cash Invested", money(c.Invested, cur), ""},
			{md.Bold("Advantage"), "", md.Bold(signed(c.Advantage(), cur))},
		},
	})
	return doc.String()
}
