package renderer

import (
	"fmt"

	"github.com/etnz/rentvest"
)

// money formats v in cur.
func money(v float64, cur string) string { return rentvest.M(v, cur).String() }

// signed formats v in cur with an explicit sign.
func signed(v float64, cur string) string { return rentvest.M(v, cur).SignedString() }

// yearLabel labels a simulated year, with its date when known.
func yearLabel(year int, on fmt.Stringer, known bool) string {
	if !known {
		return fmt.Sprintf("Year %d", year)
	}
	return fmt.Sprintf("Year %d (%s)", year, on)
}
