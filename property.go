package rentvest

import (
	"log"
	"math"
)

// Term is the mortgage term in years of every property.
const Term = 30

// UsableEquityFactor is the share of a property value banks lend against.
const UsableEquityFactor = 0.8

// PropertyConfig holds the purchase and holding parameters of a property.
// All rates are annual percentages, all flows are monthly amounts.
type PropertyConfig struct {
	Price              float64  `json:"price"`
	Deposit            float64  `json:"deposit"`    // includes the buying cost
	BuyingCost         float64  `json:"buyingCost"` // stamp duty, fees, etc.
	LMI                float64  `json:"lmi,omitempty"`
	GrowthRate         float64  `json:"growthRate"`
	InterestRate       float64  `json:"interestRate"`
	Rent               float64  `json:"rent,omitempty"`
	ExtraRepayment     float64  `json:"extraRepayment,omitempty"`
	RunningCost        float64  `json:"runningCost,omitempty"`
	CostGrowthRate     float64  `json:"costGrowthRate,omitempty"`
	Strategy           Strategy `json:"strategy"`
	OwnerOccupiedYears int      `json:"ownerOccupiedYears,omitempty"` // convert strategy only
}

// WeeklyToMonthly converts a weekly amount, like an advertised rent, to a monthly one.
func WeeklyToMonthly(weekly float64) float64 { return weekly * 52 / 12 }

// Gearing tells whether the rent covers the holding costs of a property.
type Gearing int

const (
	NotRented Gearing = iota
	PositivelyGeared
	NegativelyGeared
)

func (g Gearing) String() string {
	switch g {
	case PositivelyGeared:
		return "positively geared"
	case NegativelyGeared:
		return "negatively geared"
	default:
		return "not rented"
	}
}

// Property computes value, equity, cash flow and returns of a mortgaged
// property held under a Strategy. Year = 1 is the position after owning the
// property for one year.
//
// A Property is immutable, its queries are pure and memoized.
type Property struct {
	cfg     PropertyConfig
	loan    *Loan
	sim     *simulator
	gearing Gearing
}

// NewProperty validates cfg and returns the Property.
//
// Invalid combinations fail with a *ValidationError, a zero interest rate with
// an *ArithmeticError.
func NewProperty(cfg PropertyConfig) (*Property, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	principal := cfg.Price - cfg.Deposit + cfg.BuyingCost + cfg.LMI
	loan, err := NewLoan(cfg.InterestRate, principal, Term, cfg.Strategy == BuyToLet)
	if err != nil {
		return nil, err
	}
	p := &Property{
		cfg:  cfg,
		loan: loan,
		sim:  newSimulator(loan.MonthlyRate(), cfg.ExtraRepayment, cfg.CostGrowthRate),
	}
	if cfg.Strategy.Rented() {
		p.gearing = PositivelyGeared
		if cfg.Rent-cfg.RunningCost-loan.InterestOnlyPayment() < 0 {
			p.gearing = NegativelyGeared
			log.Printf("%s property of %.0f: running cost higher than rental income earned, property negatively geared", cfg.Strategy, cfg.Price)
		}
	}
	return p, nil
}

func (c PropertyConfig) validate() error {
	switch c.Strategy {
	case OwnerOccupied:
		if c.Rent != 0 {
			return invalid("rent", "owner-occupied should not have rent")
		}
	case BuyToLet:
		if c.Rent <= 0 {
			return invalid("rent", "buy-to-let should have rent")
		}
	case Convert:
		if c.Rent <= 0 {
			return invalid("rent", "convert should have rent")
		}
		if c.OwnerOccupiedYears <= 0 {
			return invalid("ownerOccupiedYears", "convert should have owner occupied years")
		}
	default:
		return invalid("strategy", "strategy should be owner-occupied, buy-to-let or convert")
	}
	if c.Price <= 0 {
		return invalid("price", "price should be positive")
	}
	if c.Deposit <= c.BuyingCost {
		return invalid("deposit", "deposit should be more than buying cost")
	}
	if c.RunningCost < 0 {
		return invalid("runningCost", "running cost should not be negative")
	}
	return nil
}

// Config returns the configuration the property was built from.
func (p *Property) Config() PropertyConfig { return p.cfg }

// Strategy returns how the property is held.
func (p *Property) Strategy() Strategy { return p.cfg.Strategy }

// Deposit returns the deposit, buying cost included.
func (p *Property) Deposit() float64 { return p.cfg.Deposit }

// Loan returns the mortgage of the property.
func (p *Property) Loan() *Loan { return p.loan }

// Gearing returns whether the rent covers the interest-only repayment and the running cost.
func (p *Property) Gearing() Gearing { return p.gearing }

// ownerOccupied reports whether the property is lived in during the year
// following heldYears of ownership.
func (p *Property) ownerOccupied(heldYears int) bool {
	switch p.cfg.Strategy {
	case OwnerOccupied:
		return true
	case Convert:
		return heldYears < p.cfg.OwnerOccupiedYears
	}
	return false
}

// run returns the simulation arguments for months, starting after the
// property has been held for held months with the given loan and offset.
func (p *Property) run(held, months int, loan, offset float64) PositionRun {
	r := PositionRun{
		Months:       months,
		MinRepayment: p.loan.MonthlyPayment(),
		Rent:         p.cfg.Rent,
		RunningCost:  p.cfg.RunningCost,
		StartMonth:   held,
		Loan:         loan,
		Offset:       offset,
	}
	if p.cfg.Strategy == Convert {
		if held < p.cfg.OwnerOccupiedYears*12 {
			r.Rent = 0
		} else {
			r.MinRepayment = p.loan.InterestOnlyPayment()
		}
	}
	return r
}

// Position returns the position after holding the property for years.
func (p *Property) Position(years int) Position { return p.PositionAt(years, 0) }

// PositionAt returns the position after holding the property for years and months.
//
// A convert property is simulated in two chained phases: owner-occupied with
// no rent, then rented on interest-only repayments starting from the loan and
// offset left by the first phase.
func (p *Property) PositionAt(years, months int) Position {
	total := years*12 + months
	if p.cfg.Strategy != Convert {
		return p.sim.Run(p.run(0, total, p.loan.Principal(), 0))
	}
	occupied := min(max(total, 0), p.cfg.OwnerOccupiedYears*12)
	first := p.sim.Run(p.run(0, occupied, p.loan.Principal(), 0))
	second := p.sim.Run(p.run(occupied, total-occupied, first.LoanLeft, first.Offset))
	return Position{
		LoanLeft:    second.LoanLeft,
		Offset:      second.Offset,
		OutOfPocket: first.OutOfPocket + second.OutOfPocket,
		Interest:    first.Interest + second.Interest,
	}
}

// PropertyValue returns the value after years of annual compounding growth.
func (p *Property) PropertyValue(years int) float64 {
	return Compound(p.cfg.Price, p.cfg.GrowthRate, years)
}

// LoanLeft returns the loan balance after years.
func (p *Property) LoanLeft(years int) float64 { return p.Position(years).LoanLeft }

// OffsetBalance returns the offset balance after years.
func (p *Property) OffsetBalance(years int) float64 { return p.Position(years).Offset }

// OutOfPocket returns the cumulative out of pocket expenses after years.
func (p *Property) OutOfPocket(years int) float64 { return p.Position(years).OutOfPocket }

// PrincipalPaid returns how much principal has been paid in years.
func (p *Property) PrincipalPaid(years int, extra float64) float64 {
	if p.cfg.Strategy == OwnerOccupied {
		return p.loan.PrincipalPaid(years, extra)
	}
	return p.loan.Principal() - p.LoanLeft(years)
}

// InterestPaid returns how much interest has been paid in years.
func (p *Property) InterestPaid(years int) float64 {
	if p.cfg.Strategy == OwnerOccupied {
		return p.loan.TotalInterestPaid(years, p.cfg.ExtraRepayment)
	}
	return p.Position(years).Interest
}

// Equity returns factor × value + principal paid - loan.
//
// A factor below 1 is a haircut, UsableEquityFactor gives the equity a bank
// would lend against.
func (p *Property) Equity(years int, factor float64) float64 {
	return factor*p.PropertyValue(years) + p.PrincipalPaid(years, 0) - p.loan.Principal()
}

// NetCashFlow returns the cumulative cash flow, negative means cash out.
func (p *Property) NetCashFlow(years int) float64 { return p.Position(years).NetCashFlow() }

// NetYearlyCashFlow returns the cash flow of the year ending at years.
func (p *Property) NetYearlyCashFlow(years int) float64 {
	if years <= 0 {
		return 0
	}
	return p.NetCashFlow(years) - p.NetCashFlow(years-1)
}

// NetPosition returns value - loan left - deposit - out of pocket expenses.
func (p *Property) NetPosition(years int) float64 {
	pos := p.Position(years)
	return p.PropertyValue(years) - pos.LoanLeft - p.cfg.Deposit - pos.OutOfPocket
}

// AverageAnnualReturn returns the net position over the total owning cost,
// in percent per year.
func (p *Property) AverageAnnualReturn(years int) (float64, error) {
	if years <= 0 {
		return math.NaN(), divisionByZero("average return over zero years")
	}
	cost := p.cfg.Deposit - p.NetCashFlow(years)
	if cost == 0 {
		return math.NaN(), divisionByZero("average return with a zero owning cost")
	}
	return (p.NetPosition(years) / cost * 100) / float64(years), nil
}

// LoanToValue returns the loan left over the property value.
func (p *Property) LoanToValue(years int) (float64, error) {
	value := p.PropertyValue(years)
	if value == 0 {
		return math.NaN(), divisionByZero("loan to value of a worthless property")
	}
	return p.LoanLeft(years) / value, nil
}
