package rentvest

import (
	"math"
	"testing"
)

// AUD is a helper for test to create money from const
func AUD(v float64) Money { return M(v, "AUD") }

// near fails the test if got is further than tol from want.
func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("%s = %.4f, want %.4f (±%g)", name, got, want, tol)
	}
}

// ownerOccupiedConfig is a 1,200,000 home bought with a 120,000 deposit.
func ownerOccupiedConfig() PropertyConfig {
	return PropertyConfig{
		Price:        1_200_000,
		Deposit:      120_000,
		BuyingCost:   20_000,
		GrowthRate:   5,
		InterestRate: 5,
		Strategy:     OwnerOccupied,
	}
}

// buyToLetConfig is ownerOccupiedConfig rented at 600 a week.
func buyToLetConfig() PropertyConfig {
	cfg := ownerOccupiedConfig()
	cfg.Strategy = BuyToLet
	cfg.Rent = WeeklyToMonthly(600)
	return cfg
}

// convertConfig is ownerOccupiedConfig lived in for 3 years then rented.
func convertConfig() PropertyConfig {
	cfg := buyToLetConfig()
	cfg.Strategy = Convert
	cfg.OwnerOccupiedYears = 3
	return cfg
}

func mustProperty(t *testing.T, cfg PropertyConfig) *Property {
	t.Helper()
	p, err := NewProperty(cfg)
	if err != nil {
		t.Fatalf("NewProperty(%+v) unexpected error: %v", cfg, err)
	}
	return p
}

// remaining is the closed form balance of loan after months of payment at
// the monthly rate, when nothing sits in the offset.
func remaining(loan, rate, payment float64, months int) float64 {
	g := math.Pow(1+rate, float64(months))
	return loan*g - payment*(g-1)/rate
}
