package rentvest

import (
	"errors"
	"testing"
)

func TestNewLoan(t *testing.T) {
	testCases := []struct {
		name       string
		rate       float64
		principal  float64
		years      int
		wantArith  bool
		wantReason string
	}{
		{name: "valid", rate: 5, principal: 1_100_000, years: 30},
		{name: "zero rate", rate: 0, principal: 1_100_000, years: 30, wantArith: true},
		{name: "negative rate", rate: -1, principal: 1_100_000, years: 30, wantArith: true},
		{name: "zero term", rate: 5, principal: 1_100_000, years: 0, wantReason: "term"},
		{name: "negative principal", rate: 5, principal: -1, years: 30, wantReason: "principal"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoan(tc.rate, tc.principal, tc.years, false)
			switch {
			case tc.wantArith:
				var ae *ArithmeticError
				if !errors.As(err, &ae) || !errors.Is(err, ErrDivisionByZero) {
					t.Errorf("NewLoan() error = %v, want an ArithmeticError wrapping ErrDivisionByZero", err)
				}
			case tc.wantReason != "":
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != tc.wantReason {
					t.Errorf("NewLoan() error = %v, want a ValidationError on %q", err, tc.wantReason)
				}
			default:
				if err != nil {
					t.Errorf("NewLoan() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestLoan_MonthlyPayment(t *testing.T) {
	loan, err := NewLoan(5, 1_100_000, 30, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := loan.MonthlyPayment(); got < 5905 || got > 5906 {
		t.Errorf("MonthlyPayment() = %v, want in [5905, 5906]", got)
	}
	if got, want := loan.InterestOnlyPayment(), 4584.0; got != want {
		t.Errorf("InterestOnlyPayment() = %v, want %v", got, want)
	}

	io, err := NewLoan(5, 1_100_000, 30, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := io.MonthlyPayment(), io.InterestOnlyPayment(); got != want {
		t.Errorf("interest-only MonthlyPayment() = %v, want %v", got, want)
	}
}

func TestLoan_Amortization(t *testing.T) {
	loan, err := NewLoan(5, 1_100_000, 30, false)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "TotalInterestPaid(1)", loan.TotalInterestPaid(1, 0), 54631.17, 0.01)
	near(t, "PrincipalRemaining(10)", loan.PrincipalRemaining(10, 0), 894613.31, 0.01)

	for _, years := range []int{0, 1, 5, 10, 20, 30} {
		for _, extra := range []float64{0, 500} {
			// principal paid and principal remaining always add up to the loan.
			sum := loan.PrincipalPaid(years, extra) + loan.PrincipalRemaining(years, extra)
			near(t, "PrincipalPaid+PrincipalRemaining", sum, loan.Principal(), 1e-6)
		}
	}

	// the rounded up payment clears the loan within its term.
	if got := loan.PrincipalRemaining(30, 0); got > 0 {
		t.Errorf("PrincipalRemaining(30) = %v, want <= 0", got)
	}
	// extra repayments save interest.
	if with, without := loan.TotalInterestPaid(10, 500), loan.TotalInterestPaid(10, 0); with >= without {
		t.Errorf("TotalInterestPaid with extra = %v, want < %v", with, without)
	}
}
