package rentvest

import (
	"log"
	"math"
	"slices"
)

// PortfolioConfig holds the household side of a portfolio: the cash at start
// and the monthly flows that feed or drain the shared cash pool.
// Growth rates are annual percentages.
type PortfolioConfig struct {
	Cash                  float64 `json:"cash"`
	MonthlyIncome         float64 `json:"monthlyIncome"`
	MonthlyLivingExpenses float64 `json:"monthlyLivingExpenses"`
	MonthlyLivingRent     float64 `json:"monthlyLivingRent,omitempty"` // paid while not living in an owned property
	IncomeGrowthRate      float64 `json:"incomeGrowthRate,omitempty"`
	ExpensesGrowthRate    float64 `json:"expensesGrowthRate,omitempty"`
}

// ledgerCacheSize bounds the memoized ledgers per portfolio.
const ledgerCacheSize = 128

// Portfolio tracks several properties bought at different years, sharing a
// single pool of cash and using equity of the properties already held to
// fund new deposits.
type Portfolio struct {
	cfg        PortfolioConfig
	properties []*Property
	buyYear    []int
	equityUse  []float64 // fraction of each deposit funded from equity, the rest is cash
	ledgers    *memo[int, *Ledger]
}

// NewPortfolio returns a portfolio of properties, property i being bought at
// buyYear[i] with equityUse[i] of its deposit funded from equity.
func NewPortfolio(properties []*Property, buyYear []int, equityUse []float64, cfg PortfolioConfig) (*Portfolio, error) {
	if len(buyYear) != len(properties) {
		return nil, invalid("buyYear", "buy year must be specified for each property")
	}
	if len(equityUse) != len(properties) {
		return nil, invalid("equityUse", "equity use fraction must be specified for each property")
	}
	var owner, convert int
	for i, p := range properties {
		if p == nil {
			return nil, invalid("properties", "property should not be nil")
		}
		if buyYear[i] < 0 {
			return nil, invalid("buyYear", "buy year should not be negative")
		}
		if equityUse[i] < 0 || equityUse[i] > 1 {
			return nil, invalid("equityUse", "equity use fraction should be between 0 and 1")
		}
		switch p.Strategy() {
		case OwnerOccupied:
			owner++
		case Convert:
			convert++
		}
	}
	if owner > 1 {
		return nil, invalid("properties", "only one owner-occupied property allowed")
	}
	if convert > 1 {
		return nil, invalid("properties", "only one convert property allowed")
	}
	if owner == 0 && cfg.MonthlyLivingRent <= 0 {
		return nil, invalid("monthlyLivingRent", "rent cannot be 0 if no owner-occupied property in portfolio")
	}
	return &Portfolio{
		cfg:        cfg,
		properties: slices.Clone(properties),
		buyYear:    slices.Clone(buyYear),
		equityUse:  slices.Clone(equityUse),
		ledgers:    newMemo[int, *Ledger](ledgerCacheSize),
	}, nil
}

// Len returns the number of properties.
func (pf *Portfolio) Len() int { return len(pf.properties) }

// Property returns the i-th property and the year it is bought.
func (pf *Portfolio) Property(i int) (*Property, int) { return pf.properties[i], pf.buyYear[i] }

// Config returns the household configuration.
func (pf *Portfolio) Config() PortfolioConfig { return pf.cfg }

// Savings returns what is saved from income during year (1 is the first year).
func (pf *Portfolio) Savings(year int) float64 {
	if year <= 0 {
		return 0
	}
	n := float64(year - 1)
	income := 12 * pf.cfg.MonthlyIncome * math.Pow(1+pf.cfg.IncomeGrowthRate/100, n)
	expenses := 12 * pf.cfg.MonthlyLivingExpenses * math.Pow(1+pf.cfg.ExpensesGrowthRate/100, n)
	return income - expenses
}

// TotalSavings returns the savings accumulated over years.
func (pf *Portfolio) TotalSavings(years int) float64 {
	var total float64
	for i := 1; i <= years; i++ {
		total += pf.Savings(i)
	}
	return total
}

// sum adds f(property, years held) over the properties held at years.
// Properties bought exactly at years are included only if atPurchase is set.
func (pf *Portfolio) sum(years int, atPurchase bool, f func(p *Property, held int) float64) float64 {
	var total float64
	for i, p := range pf.properties {
		b := pf.buyYear[i]
		if b > years || (b == years && !atPurchase) {
			continue
		}
		total += f(p, years-b)
	}
	return total
}

// CashDepositAt returns the deposits paid in cash during year.
func (pf *Portfolio) CashDepositAt(year int) float64 {
	var total float64
	for i, p := range pf.properties {
		if pf.buyYear[i] == year {
			total += p.Deposit() * (1 - pf.equityUse[i])
		}
	}
	return total
}

// TotalCashDeposit returns the deposits paid in cash up to year.
func (pf *Portfolio) TotalCashDeposit(year int) float64 {
	var total float64
	for i, p := range pf.properties {
		if pf.buyYear[i] <= year {
			total += p.Deposit() * (1 - pf.equityUse[i])
		}
	}
	return total
}

// EquityDeposit returns the deposits funded from equity up to year.
func (pf *Portfolio) EquityDeposit(year int) float64 {
	var total float64
	for i, p := range pf.properties {
		if pf.buyYear[i] <= year {
			total += p.Deposit() * pf.equityUse[i]
		}
	}
	return total
}

// DepositNeeded returns all the deposits paid up to year.
func (pf *Portfolio) DepositNeeded(year int) float64 {
	return pf.sum(year, true, func(p *Property, _ int) float64 { return p.Deposit() })
}

// UsableEquity returns the equity that can be borrowed against at years: the
// positive part of each held property equity at UsableEquityFactor.
func (pf *Portfolio) UsableEquity(years int) float64 {
	return pf.sum(years, false, func(p *Property, held int) float64 {
		return max(p.Equity(held, UsableEquityFactor), 0)
	})
}

// Feasibility checks that the deposits funded from equity up to year do not
// exceed the usable equity at year.
func (pf *Portfolio) Feasibility(year int) (FeasibilityWarning, bool) {
	w := FeasibilityWarning{
		Year:         year,
		UsableEquity: pf.UsableEquity(year),
		EquityNeeded: pf.EquityDeposit(year),
	}
	return w, w.EquityNeeded <= w.UsableEquity
}

// livingInOwnProperty reports whether an owned property is lived in during year.
func (pf *Portfolio) livingInOwnProperty(year int) bool {
	for i, p := range pf.properties {
		if b := pf.buyYear[i]; b < year && p.ownerOccupied(year-1-b) {
			return true
		}
	}
	return false
}

// PersonalRent returns the rent paid for living up to years.
func (pf *Portfolio) PersonalRent(years int) float64 {
	var rented int
	for y := 1; y <= years; y++ {
		if !pf.livingInOwnProperty(y) {
			rented++
		}
	}
	return pf.cfg.MonthlyLivingRent * 12 * float64(rented)
}

// PersonalRentAt returns the rent paid for living during year.
func (pf *Portfolio) PersonalRentAt(year int) float64 {
	if year <= 0 {
		return 0
	}
	return pf.PersonalRent(year) - pf.PersonalRent(year-1)
}

// Run simulates the shared cash pool year by year up to years.
//
// Each year, every held property starts with its loan of the previous year
// and an equal share of the previous cash pool in its offset account. The
// pool is then replaced by the sum of the offsets, plus savings, minus cash
// deposits, personal rent and out of pocket expenses. Before the first
// purchase there is no offset, so only the savings of the year remain.
//
// The returned Ledger is memoized and must not be modified.
func (pf *Portfolio) Run(years int) *Ledger {
	years = max(years, 0)
	return pf.ledgers.Do(years, func() *Ledger { return pf.run(years) })
}

func (pf *Portfolio) run(years int) *Ledger {
	l := newLedger(years, len(pf.properties))
	for j, p := range pf.properties {
		if b := pf.buyYear[j]; b <= years {
			l.LoanLeft[b][j] = p.loan.Principal()
		}
	}

	cash := pf.cfg.Cash - pf.CashDepositAt(0)
	l.Cash[0] = cash

	for i := 1; i <= years; i++ {
		var active int
		for _, b := range pf.buyYear {
			if b < i {
				active++
			}
		}

		var offset, oop float64
		for j, p := range pf.properties {
			b := pf.buyYear[j]
			if i <= b {
				continue
			}
			r := p.run((i-1-b)*12, 12, l.LoanLeft[i-1][j], cash/float64(active))
			pos := p.sim.Run(r)
			l.LoanLeft[i][j] = pos.LoanLeft
			l.OutOfPocket[i][j] = pos.OutOfPocket
			offset += pos.Offset
			oop += pos.OutOfPocket
		}
		// the pool is what the offset accounts hold at the end of the year,
		// nothing when no property is held yet.
		cash += offset - cash
		cash += pf.Savings(i) - pf.CashDepositAt(i) - pf.PersonalRentAt(i) - oop
		l.Cash[i] = cash
	}

	for _, y := range pf.equityFundedYears(years) {
		if w, ok := pf.Feasibility(y); !ok {
			log.Print(w.Error())
			l.Warnings = append(l.Warnings, w)
		}
	}
	return l
}

// equityFundedYears returns the sorted acquisition years up to years where
// some deposit is funded from equity.
func (pf *Portfolio) equityFundedYears(years int) []int {
	var res []int
	for i, b := range pf.buyYear {
		if b <= years && pf.equityUse[i] > 0 {
			res = append(res, b)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// PropertyValue returns the value of all properties bought up to years.
func (pf *Portfolio) PropertyValue(years int) float64 {
	return pf.sum(years, true, (*Property).PropertyValue)
}

// CashFlow returns the cumulative net cash flow of the held properties.
func (pf *Portfolio) CashFlow(years int) float64 {
	return pf.sum(years, false, (*Property).NetCashFlow)
}

// CashFlowExcludingOffset returns the cumulative out of pocket expenses of the held properties.
func (pf *Portfolio) CashFlowExcludingOffset(years int) float64 {
	return pf.sum(years, false, (*Property).OutOfPocket)
}

// Equity returns the equity of the properties at factor, net of the deposits
// already funded from equity.
func (pf *Portfolio) Equity(years int, factor float64) float64 {
	equity := pf.sum(years, true, func(p *Property, held int) float64 { return p.Equity(held, factor) })
	return equity - pf.EquityDeposit(years)
}

// NetPosition returns the sum of the net positions of the held properties.
func (pf *Portfolio) NetPosition(years int) float64 {
	return pf.sum(years, false, (*Property).NetPosition)
}

// TotalCash returns the cash at years, computing each property independently
// (no shared pool).
func (pf *Portfolio) TotalCash(years int) float64 {
	return pf.cfg.Cash + pf.TotalSavings(years) - pf.TotalCashDeposit(years) - pf.PersonalRent(years) + pf.CashFlow(years)
}

// TotalCashExcludingOffset is like TotalCash but ignores the money left in offset accounts.
func (pf *Portfolio) TotalCashExcludingOffset(years int) float64 {
	return pf.cfg.Cash + pf.TotalSavings(years) - pf.TotalCashDeposit(years) - pf.PersonalRent(years) - pf.CashFlowExcludingOffset(years)
}

// Position returns the closed form position of the portfolio at years.
func (pf *Portfolio) Position(years int) Snapshot {
	return Snapshot{
		Year:          years,
		PropertyValue: pf.PropertyValue(years),
		Cash:          pf.TotalCash(years),
		Equity:        pf.Equity(years, 1),
		NetPosition:   pf.NetPosition(years),
	}
}

// Series returns the portfolio time series from year 0 to years, from the
// shared cash simulation.
func (pf *Portfolio) Series(years int) []Snapshot {
	l := pf.Run(years)
	res := make([]Snapshot, 0, l.Years()+1)
	for y := range l.Years() + 1 {
		value := pf.PropertyValue(y)
		loan := l.TotalLoanLeft(y)
		res = append(res, Snapshot{
			Year:          y,
			PropertyValue: value,
			LoanLeft:      loan,
			Cash:          l.Cash[y],
			Equity:        value - loan,
			NetPosition:   pf.NetPosition(y),
		})
	}
	return res
}
