package rentvest

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "AUD"

// Money is an amount in a currency, for display. The engine computes in
// float64, Money rounds to the currency fraction when a result is reported.
type Money struct {
	value decimal.Decimal // major units
	cur   string
}

// M returns value as Money in currency.
func M(value float64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the go-money currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// Currency returns the ISO code.
func (m Money) Currency() string { return m.cur }

// Rounded returns the value rounded to the currency fraction.
func (m Money) Rounded() decimal.Decimal { return m.value.Round(int32(m.currency().Fraction)) }

// String formats the amount with the currency symbol and grouping.
func (m Money) String() string {
	cur := m.currency()
	return cur.Formatter().Format(m.value.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// SignedString is like String with an explicit + for positive amounts, and "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) IsNegative() bool { return m.value.IsNegative() }

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", m.cur)
	w.Append("amount", m.Rounded())
	return w.MarshalJSON()
}

// round2 rounds a float to cents.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
