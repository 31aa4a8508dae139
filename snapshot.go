package rentvest

// Snapshot is the position of a portfolio at the end of a year.
type Snapshot struct {
	Year          int
	PropertyValue float64
	LoanLeft      float64
	Cash          float64
	Equity        float64
	NetPosition   float64
}

// NetWorth is the equity plus the cash.
func (s Snapshot) NetWorth() float64 { return s.Equity + s.Cash }

func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", s.Year)
	w.Append("propertyValue", round2(s.PropertyValue))
	w.Optional("loanLeft", round2(s.LoanLeft))
	w.Append("cash", round2(s.Cash))
	w.Append("equity", round2(s.Equity))
	w.Append("netPosition", round2(s.NetPosition))
	w.Append("netWorth", round2(s.NetWorth()))
	return w.MarshalJSON()
}
