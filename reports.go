package rentvest

import (
	"log"
	"math"

	"github.com/etnz/rentvest/date"
)

// ReportOptions are the presentation settings shared by reports.
type ReportOptions struct {
	Name     string
	Currency string
	Start    date.Date
	// Inflation and IndexReturn are annual percentages used to compare a property against an index fund.
	Inflation   float64
	IndexReturn float64
}

// PropertyYear is the state of a property at the end of a holding year.
type PropertyYear struct {
	Year           int
	On             date.Date
	Value          float64
	LoanLeft       float64
	Offset         float64
	OutOfPocket    float64
	Interest       float64
	Equity         float64
	UsableEquity   float64
	NetCashFlow    float64
	YearlyCashFlow float64
	NetPosition    float64
	AverageReturn  Percent // NaN when undefined
	LoanToValue    Percent // NaN when undefined
}

func (y PropertyYear) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", y.Year)
	w.Optional("on", y.On)
	w.Append("value", round2(y.Value))
	w.Append("loanLeft", round2(y.LoanLeft))
	w.Optional("offset", round2(y.Offset))
	w.Optional("outOfPocket", round2(y.OutOfPocket))
	w.Append("interest", round2(y.Interest))
	w.Append("equity", round2(y.Equity))
	w.Append("usableEquity", round2(y.UsableEquity))
	w.Append("netCashFlow", round2(y.NetCashFlow))
	w.Append("yearlyCashFlow", round2(y.YearlyCashFlow))
	w.Append("netPosition", round2(y.NetPosition))
	if !math.IsNaN(float64(y.AverageReturn)) {
		w.Append("averageReturn", round2(float64(y.AverageReturn)))
	}
	if !math.IsNaN(float64(y.LoanToValue)) {
		w.Append("loanToValue", round2(float64(y.LoanToValue)))
	}
	return w.MarshalJSON()
}

// PropertyReport is the year by year outcome of holding a single property.
type PropertyReport struct {
	Name           string
	Currency       string
	Strategy       Strategy
	Gearing        Gearing
	Price          float64
	Deposit        float64
	Principal      float64
	MonthlyPayment float64
	Years          []PropertyYear
	Comparison     *Comparison
}

// NewPropertyReport computes the report of p from year 0 to years.
func NewPropertyReport(p *Property, years int, opts ReportOptions) (*PropertyReport, error) {
	if years < 0 {
		return nil, invalid("years", "should not be negative")
	}
	r := &PropertyReport{
		Name:           opts.Name,
		Currency:       currencyOr(opts.Currency),
		Strategy:       p.Strategy(),
		Gearing:        p.Gearing(),
		Price:          p.Config().Price,
		Deposit:        p.Deposit(),
		Principal:      p.Loan().Principal(),
		MonthlyPayment: p.Loan().MonthlyPayment(),
		Years:          make([]PropertyYear, 0, years+1),
	}
	for y := range years + 1 {
		pos := p.Position(y)
		row := PropertyYear{
			Year:           y,
			Value:          p.PropertyValue(y),
			LoanLeft:       pos.LoanLeft,
			Offset:         pos.Offset,
			OutOfPocket:    pos.OutOfPocket,
			Interest:       pos.Interest,
			Equity:         p.Equity(y, 1),
			UsableEquity:   p.Equity(y, UsableEquityFactor),
			NetCashFlow:    pos.NetCashFlow(),
			YearlyCashFlow: p.NetYearlyCashFlow(y),
			NetPosition:    p.NetPosition(y),
			AverageReturn:  Percent(math.NaN()),
			LoanToValue:    Percent(math.NaN()),
		}
		if !opts.Start.IsZero() {
			row.On = opts.Start.AddYears(y)
		}
		if ret, err := p.AverageAnnualReturn(y); err == nil {
			row.AverageReturn = Percent(ret)
		}
		if lvr, err := p.LoanToValue(y); err == nil {
			row.LoanToValue = Percent(lvr * 100)
		}
		r.Years = append(r.Years, row)
	}
	if years > 0 && (opts.Inflation != 0 || opts.IndexReturn != 0) {
		c, err := Compare(p, years, opts.Inflation, opts.IndexReturn)
		if err != nil {
			return nil, err
		}
		r.Comparison = &c
	}
	return r, nil
}

// Last returns the final year of the report.
func (r *PropertyReport) Last() PropertyYear { return r.Years[len(r.Years)-1] }

func (r *PropertyReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("name", r.Name)
	w.Append("currency", r.Currency)
	w.Append("strategy", r.Strategy)
	w.Append("gearing", r.Gearing.String())
	w.Append("price", round2(r.Price))
	w.Append("deposit", round2(r.Deposit))
	w.Append("principal", round2(r.Principal))
	w.Append("monthlyPayment", round2(r.MonthlyPayment))
	w.Append("years", r.Years)
	if r.Comparison != nil {
		w.Append("comparison", comparisonJSON(*r.Comparison))
	}
	return w.MarshalJSON()
}

type comparisonJSON Comparison

func (c comparisonJSON) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("years", c.Years)
	w.Append("netPosition", round2(c.NetPosition))
	w.Append("realNetPosition", round2(c.RealNetPosition))
	w.Append("invested", round2(c.Invested))
	w.Append("indexGain", round2(c.IndexGain))
	w.Append("realIndexGain", round2(c.RealIndexGain))
	w.Append("advantage", round2(Comparison(c).Advantage()))
	return w.MarshalJSON()
}

// Holding summarizes a property of a portfolio.
type Holding struct {
	Name      string   `json:"name"`
	Strategy  Strategy `json:"strategy"`
	BuyYear   int      `json:"buyYear"`
	EquityUse float64  `json:"equityUse,omitempty"`
	Price     float64  `json:"price"`
	Deposit   float64  `json:"deposit"`
	Gearing   string   `json:"gearing"`
}

// PortfolioReport is the year by year outcome of a portfolio.
type PortfolioReport struct {
	Name     string
	Currency string
	Start    date.Date
	Holdings []Holding
	Series   []Snapshot
	Warnings []FeasibilityWarning
}

// NewPortfolioReport runs pf for years. names gives each property a display
// name, it may be nil.
func NewPortfolioReport(pf *Portfolio, years int, names []string, opts ReportOptions) (*PortfolioReport, error) {
	if years < 0 {
		return nil, invalid("years", "should not be negative")
	}
	r := &PortfolioReport{
		Name:     opts.Name,
		Currency: currencyOr(opts.Currency),
		Start:    opts.Start,
		Holdings: make([]Holding, pf.Len()),
		Series:   pf.Series(years),
		Warnings: pf.Run(years).Warnings,
	}
	for i := range pf.Len() {
		p, buy := pf.Property(i)
		h := Holding{
			Strategy:  p.Strategy(),
			BuyYear:   buy,
			EquityUse: pf.equityUse[i],
			Price:     p.Config().Price,
			Deposit:   p.Deposit(),
			Gearing:   p.Gearing().String(),
		}
		if i < len(names) {
			h.Name = names[i]
		}
		r.Holdings[i] = h
	}
	for _, w := range r.Warnings {
		log.Printf("warning: %v", w)
	}
	return r, nil
}

// On returns the date at the end of year, zero if the report has no start date.
func (r *PortfolioReport) On(year int) date.Date {
	if r.Start.IsZero() {
		return date.Date{}
	}
	return r.Start.AddYears(year)
}

// Feasible reports whether every equity funded deposit was covered.
func (r *PortfolioReport) Feasible() bool { return len(r.Warnings) == 0 }

func (r *PortfolioReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("name", r.Name)
	w.Append("currency", r.Currency)
	w.Optional("start", r.Start)
	w.Append("holdings", r.Holdings)
	w.Append("series", r.Series)
	w.Append("feasible", r.Feasible())
	w.Optional("warnings", r.Warnings)
	return w.MarshalJSON()
}

func currencyOr(cur string) string {
	if cur == "" {
		return DefaultCurrency
	}
	return cur
}
