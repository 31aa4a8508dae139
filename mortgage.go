package rentvest

import "math"

// Loan does the basic calculations of a fixed-rate, fixed-term mortgage.
//
// Compounding is monthly. Banks usually compound daily, this is close enough.
// Extra repayments can be made but they have to be constant across periods.
type Loan struct {
	rate         float64 // monthly
	principal    float64
	years        int
	interestOnly bool
}

// NewLoan returns a loan of principal at annualRate percent over years.
//
// The annuity formula is undefined for a zero rate: a rate <= 0 is rejected
// with an ArithmeticError wrapping ErrDivisionByZero.
func NewLoan(annualRate, principal float64, years int, interestOnly bool) (*Loan, error) {
	if annualRate <= 0 || math.IsNaN(annualRate) {
		return nil, divisionByZero("annuity with a non positive interest rate")
	}
	if years <= 0 {
		return nil, invalid("term", "loan term should be positive")
	}
	if principal < 0 {
		return nil, invalid("principal", "loan principal should not be negative")
	}
	return &Loan{
		rate:         annualRate / 1200,
		principal:    principal,
		years:        years,
		interestOnly: interestOnly,
	}, nil
}

// MonthlyRate returns the monthly interest rate as a ratio.
func (l *Loan) MonthlyRate() float64 { return l.rate }

// Principal returns the amount borrowed.
func (l *Loan) Principal() float64 { return l.principal }

// Months returns the number of monthly periods in the term.
func (l *Loan) Months() int { return l.years * 12 }

// InterestOnly reports whether no principal is retired by the minimum payment.
func (l *Loan) InterestOnly() bool { return l.interestOnly }

// MonthlyPayment returns the minimum monthly payment.
//
// It is rounded up so that paying it always clears the loan within its term.
func (l *Loan) MonthlyPayment() float64 {
	if l.interestOnly {
		return l.InterestOnlyPayment()
	}
	return math.Ceil(l.rate * l.principal / (1 - math.Pow(1+l.rate, -float64(l.Months()))))
}

// InterestOnlyPayment returns the monthly interest on the full principal, rounded up.
func (l *Loan) InterestOnlyPayment() float64 {
	return math.Ceil(l.rate * l.principal)
}

// TotalInterestPaid returns the interest paid over years when paying the
// minimum payment plus extra every month.
func (l *Loan) TotalInterestPaid(years int, extra float64) float64 {
	payment := l.MonthlyPayment() + extra
	periods := float64(years * 12)
	return (l.principal*l.rate-payment)*(math.Pow(1+l.rate, periods)-1)/l.rate + payment*periods
}

// PrincipalRemaining returns the principal left after years.
func (l *Loan) PrincipalRemaining(years int, extra float64) float64 {
	paid := (l.MonthlyPayment() + extra) * float64(years*12)
	return l.principal - (paid - l.TotalInterestPaid(years, extra))
}

// PrincipalPaid returns the principal retired after years.
func (l *Loan) PrincipalPaid(years int, extra float64) float64 {
	return l.principal - l.PrincipalRemaining(years, extra)
}
