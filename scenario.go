package rentvest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/rentvest/date"
)

// PropertyScenario is a property of a Scenario with its acquisition plan.
type PropertyScenario struct {
	Name string `json:"name,omitempty"`
	PropertyConfig
	// WeeklyRent is an alternative to the monthly Rent, as rents are usually advertised.
	WeeklyRent float64 `json:"weeklyRent,omitempty"`
	BuyYear    int     `json:"buyYear,omitempty"`
	EquityUse  float64 `json:"equityUse,omitempty"`
}

// Scenario is the JSON description of a household and the properties it
// plans to buy.
type Scenario struct {
	Name          string    `json:"name,omitempty"`
	Start         date.Date `json:"start"`
	Currency      string    `json:"currency,omitempty"`
	Years         int       `json:"years,omitempty"`
	InflationRate float64   `json:"inflationRate,omitempty"`
	IndexReturn   float64   `json:"indexReturn,omitempty"`
	PortfolioConfig
	Properties []PropertyScenario `json:"properties"`
}

// DefaultYears is the simulated horizon when a scenario does not set one.
const DefaultYears = 30

// DecodeScenario reads a JSON scenario. Unknown fields are rejected.
func DecodeScenario(r io.Reader) (*Scenario, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if len(s.Properties) == 0 {
		return nil, invalid("properties", "scenario should have at least one property")
	}
	for i, p := range s.Properties {
		if p.WeeklyRent != 0 && p.Rent != 0 {
			return nil, fmt.Errorf("property %d: %w", i, invalid("rent", "set either rent or weeklyRent"))
		}
	}
	if s.Years <= 0 {
		s.Years = DefaultYears
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	return &s, nil
}

// PropertyName returns the name of the i-th property, or a default one.
func (s *Scenario) PropertyName(i int) string {
	if n := s.Properties[i].Name; n != "" {
		return n
	}
	return fmt.Sprintf("#%d %s", i+1, s.Properties[i].Strategy)
}

// Property builds the i-th property.
func (s *Scenario) Property(i int) (*Property, error) {
	if i < 0 || i >= len(s.Properties) {
		return nil, fmt.Errorf("no property %d in scenario, it has %d", i, len(s.Properties))
	}
	ps := s.Properties[i]
	cfg := ps.PropertyConfig
	if ps.WeeklyRent != 0 {
		cfg.Rent = WeeklyToMonthly(ps.WeeklyRent)
	}
	p, err := NewProperty(cfg)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", s.PropertyName(i), err)
	}
	return p, nil
}

// Portfolio builds the portfolio of all the scenario properties.
func (s *Scenario) Portfolio() (*Portfolio, error) {
	properties := make([]*Property, len(s.Properties))
	buyYear := make([]int, len(s.Properties))
	equityUse := make([]float64, len(s.Properties))
	for i, ps := range s.Properties {
		p, err := s.Property(i)
		if err != nil {
			return nil, err
		}
		properties[i], buyYear[i], equityUse[i] = p, ps.BuyYear, ps.EquityUse
	}
	return NewPortfolio(properties, buyYear, equityUse, s.PortfolioConfig)
}

// ReportOptions returns the report settings of the scenario.
func (s *Scenario) ReportOptions() ReportOptions {
	return ReportOptions{
		Name:        s.Name,
		Currency:    s.Currency,
		Start:       s.Start,
		Inflation:   s.InflationRate,
		IndexReturn: s.IndexReturn,
	}
}

// PortfolioReport builds the portfolio report of the scenario over years.
func (s *Scenario) PortfolioReport(years int) (*PortfolioReport, error) {
	pf, err := s.Portfolio()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(s.Properties))
	for i := range names {
		names[i] = s.PropertyName(i)
	}
	return NewPortfolioReport(pf, years, names, s.ReportOptions())
}

// PropertyReport builds the report of the i-th property held alone over years.
func (s *Scenario) PropertyReport(i, years int) (*PropertyReport, error) {
	p, err := s.Property(i)
	if err != nil {
		return nil, err
	}
	opts := s.ReportOptions()
	opts.Name = s.PropertyName(i)
	return NewPropertyReport(p, years, opts)
}
