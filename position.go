package rentvest

import "math"

// Position is the state of a held property after some months.
type Position struct {
	// LoanLeft is the notional balance used to compute interest. Repayments
	// above the interest reduce it, surplus cash goes to the offset instead.
	LoanLeft float64
	// Offset is the cash accumulated in the offset account.
	Offset float64
	// OutOfPocket is the cumulative shortfall paid from outside the property, as a positive amount.
	OutOfPocket float64
	// Interest is the cumulative interest charged.
	Interest float64
}

// NetCashFlow is the cash generated by the property, negative when cash went out.
func (p Position) NetCashFlow() float64 { return p.Offset - p.OutOfPocket }

// PositionRun holds every argument of a monthly simulation.
//
// It is comparable and used as the memoization key.
type PositionRun struct {
	Months       int     // number of months to simulate
	MinRepayment float64 // minimum monthly repayment
	Rent         float64 // monthly rent earned
	RunningCost  float64 // monthly running cost at purchase
	StartMonth   int     // months already held, the running cost has grown for that long
	Loan         float64 // starting loan balance
	Offset       float64 // starting offset balance
}

// positionCacheSize bounds the memoized runs per property.
const positionCacheSize = 256

// simulator runs the month by month recurrence of a property.
type simulator struct {
	rate       float64 // monthly interest rate
	extra      float64 // fixed extra repayment
	costGrowth float64 // monthly running cost growth, as a ratio
	cache      *memo[PositionRun, Position]
}

func newSimulator(rate, extra, annualCostGrowth float64) *simulator {
	return &simulator{
		rate:       rate,
		extra:      extra,
		costGrowth: annualCostGrowth / 1200,
		cache:      newMemo[PositionRun, Position](positionCacheSize),
	}
}

// Run returns the position after r.Months.
func (s *simulator) Run(r PositionRun) Position {
	return s.cache.Do(r, func() Position { return s.simulate(r) })
}

// simulate is the brute force recurrence behind Run.
//
// Interest is charged on the loan net of the offset. Whatever rent and extra
// repayment leave after the minimum repayment and the running cost goes to the
// offset, a shortfall is paid out of pocket.
func (s *simulator) simulate(r PositionRun) Position {
	loan, offset := r.Loan, r.Offset
	var oop, interest float64
	cost := r.RunningCost * math.Pow(1+s.costGrowth, float64(r.StartMonth))
	for range max(r.Months, 0) {
		charged := s.rate * (loan - offset)
		interest += charged
		// loan may go below zero once repaid, offset keeps earning a zero interest credit.
		loan -= r.MinRepayment - charged

		cost *= 1 + s.costGrowth
		surplus := r.Rent + s.extra - r.MinRepayment - cost
		if surplus < 0 {
			oop += surplus
		} else {
			offset += surplus
		}
	}
	return Position{LoanLeft: loan, Offset: offset, OutOfPocket: math.Abs(oop), Interest: interest}
}
