package rentvest

import (
	"encoding/json"
	"fmt"
)

// Strategy defines how a property is held.
type Strategy int

const (
	// OwnerOccupied is a principal place of residence, bought to live in.
	OwnerOccupied Strategy = iota
	// BuyToLet is an investment property rented from day one, on an interest-only loan.
	BuyToLet
	// Convert is lived in for some years and then rented out, interest-only, for the rest of the holding period.
	Convert
)

func (s Strategy) String() string {
	switch s {
	case OwnerOccupied:
		return "owner-occupied"
	case BuyToLet:
		return "buy-to-let"
	case Convert:
		return "convert"
	default:
		return "unknown"
	}
}

// Rented reports whether the strategy earns rent at some point.
func (s Strategy) Rented() bool { return s == BuyToLet || s == Convert }

// ParseStrategy parses a string into a Strategy.
//
// Legacy names "ppor", "rentvest" and "convert_to_rent" are accepted too.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "owner-occupied", "ppor":
		return OwnerOccupied, nil
	case "buy-to-let", "rentvest":
		return BuyToLet, nil
	case "convert", "convert_to_rent":
		return Convert, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %q", s)
	}
}

func (s Strategy) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Strategy) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseStrategy(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
