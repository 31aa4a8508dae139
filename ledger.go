package rentvest

// Ledger is the year by year record of a portfolio simulation.
//
// Rows are indexed by year (0 is the start), columns by property in the
// portfolio order. A Ledger returned by Portfolio.Run is shared and must be
// treated as read-only.
type Ledger struct {
	LoanLeft    [][]float64 // loan balance per year and property
	OutOfPocket [][]float64 // out of pocket expenses of the year, per year and property
	Cash        []float64   // shared cash pool at the end of each year
	Warnings    []FeasibilityWarning
}

func newLedger(years, properties int) *Ledger {
	l := &Ledger{
		LoanLeft:    make([][]float64, years+1),
		OutOfPocket: make([][]float64, years+1),
		Cash:        make([]float64, years+1),
	}
	for i := range years + 1 {
		l.LoanLeft[i] = make([]float64, properties)
		l.OutOfPocket[i] = make([]float64, properties)
	}
	return l
}

// Years returns the number of simulated years.
func (l *Ledger) Years() int { return len(l.Cash) - 1 }

// TotalLoanLeft returns the sum of all loan balances at year.
func (l *Ledger) TotalLoanLeft(year int) float64 {
	var total float64
	for _, v := range l.LoanLeft[year] {
		total += v
	}
	return total
}

// TotalOutOfPocket returns the out of pocket expenses of all properties during year.
func (l *Ledger) TotalOutOfPocket(year int) float64 {
	var total float64
	for _, v := range l.OutOfPocket[year] {
		total += v
	}
	return total
}

// Feasible reports whether no acquisition lacked equity.
func (l *Ledger) Feasible() bool { return len(l.Warnings) == 0 }

func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("years", l.Years())
	w.Append("loanLeft", l.LoanLeft)
	w.Append("outOfPocket", l.OutOfPocket)
	w.Append("cash", l.Cash)
	w.Optional("warnings", l.Warnings)
	return w.MarshalJSON()
}
