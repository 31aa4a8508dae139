package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rentvest"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders a portfolio report: the holdings, the feasibility
// warnings and the yearly series.
func PortfolioMarkdown(r *rentvest.PortfolioReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := r.Currency

	title := "Portfolio Report"
	if r.Name != "" {
		title = fmt.Sprintf("Portfolio Report for %s", r.Name)
	}
	doc.H1(title)

	doc.H2("Holdings")
	holdings := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Property", "Strategy", "Bought", "Price", "Deposit", "From Equity", "Gearing"},
	}
	for i, h := range r.Holdings {
		name := h.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		holdings.Rows = append(holdings.Rows, []string{
			name,
			h.Strategy.String(),
			yearLabel(h.BuyYear, r.On(h.BuyYear), !r.Start.IsZero()),
			money(h.Price, cur),
			money(h.Deposit, cur),
			rentvest.Percent(h.EquityUse * 100).String(),
			h.Gearing,
		})
	}
	doc.Table(holdings)

	if len(r.Warnings) > 0 {
		doc.H2("Warnings")
		var warnings []string
		for _, w := range r.Warnings {
			warnings = append(warnings, fmt.Sprintf("%s: usable equity %s, equity needed %s, shortfall %s",
				yearLabel(w.Year, r.On(w.Year), !r.Start.IsZero()),
				money(w.UsableEquity, cur),
				money(w.EquityNeeded, cur),
				money(w.Shortfall(), cur),
			))
		}
		doc.BulletList(warnings...)
	}

	doc.H2("Year by Year")
	series := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Property Value", "Loan", "Cash", "Equity", "Net Worth", "Net Position"},
	}
	for _, s := range r.Series {
		series.Rows = append(series.Rows, []string{
			yearLabel(s.Year, r.On(s.Year), !r.Start.IsZero()),
			money(s.PropertyValue, cur),
			money(s.LoanLeft, cur),
			money(s.Cash, cur),
			money(s.Equity, cur),
			money(s.NetWorth(), cur),
			signed(s.NetPosition, cur),
		})
	}
	doc.Table(series)

	return doc.String()
}
