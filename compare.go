package rentvest

import "math"

// Compound returns principal grown at rate percent per year for years.
func Compound(principal, rate float64, years int) float64 {
	return principal * math.Pow(1+rate/100, float64(years))
}

// Discount returns the present value of value received in years, at rate
// percent per year (typically inflation).
func Discount(value, rate float64, years int) (float64, error) {
	if rate <= -100 {
		return math.NaN(), divisionByZero("discount at a rate of -100% or less")
	}
	return value / math.Pow(1+rate/100, float64(years)), nil
}

// Comparison puts a property outcome against inflation and against investing
// the same cash in an index fund.
type Comparison struct {
	Years int
	// NetPosition is the property gain, see Property.NetPosition.
	NetPosition float64
	// RealNetPosition is NetPosition in today's money.
	RealNetPosition float64
	// Invested is the cash put in: the deposit and every out of pocket expense.
	Invested float64
	// IndexGain is what Invested would have earned at the index return, each
	// yearly amount compounding from the year it was spent.
	IndexGain float64
	// RealIndexGain is IndexGain in today's money.
	RealIndexGain float64
}

// Advantage is how much better the property did than the index, in today's money.
func (c Comparison) Advantage() float64 { return c.RealNetPosition - c.RealIndexGain }

// Compare compares holding p for years against an index fund returning
// indexReturn percent, with inflation percent per year.
func Compare(p *Property, years int, inflation, indexReturn float64) (Comparison, error) {
	c := Comparison{
		Years:       years,
		NetPosition: p.NetPosition(years),
		Invested:    p.Deposit(),
	}
	value := Compound(p.Deposit(), indexReturn, years)
	for y := 1; y <= years; y++ {
		spent := p.OutOfPocket(y) - p.OutOfPocket(y-1)
		c.Invested += spent
		value += Compound(spent, indexReturn, years-y)
	}
	c.IndexGain = value - c.Invested

	var err error
	if c.RealNetPosition, err = Discount(c.NetPosition, inflation, years); err != nil {
		return c, err
	}
	if c.RealIndexGain, err = Discount(c.IndexGain, inflation, years); err != nil {
		return c, err
	}
	return c, nil
}
