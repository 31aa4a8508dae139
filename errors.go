package rentvest

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is wrapped by every ArithmeticError raised because a
// formula denominator degenerates.
var ErrDivisionByZero = errors.New("division by zero")

// ValidationError reports a configuration that violates an invariant of a
// Loan, a Property or a Portfolio. It is only returned by constructors.
type ValidationError struct {
	Field  string // the offending parameter, e.g. "rent"
	Reason string // the violated invariant, in plain words
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ArithmeticError reports an input outside the domain of a formula, like a
// zero interest rate in the annuity formula or zero holding years in an
// average return.
type ArithmeticError struct {
	Op  string
	Err error
}

func (e *ArithmeticError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *ArithmeticError) Unwrap() error { return e.Err }

func divisionByZero(op string) error {
	return &ArithmeticError{Op: op, Err: ErrDivisionByZero}
}

// FeasibilityWarning is raised when the deposits funded from equity exceed the
// usable equity at an acquisition year. It is a signal, the simulation goes on
// with an under-collateralized state and the caller decides what to do.
type FeasibilityWarning struct {
	Year         int     `json:"year"`
	UsableEquity float64 `json:"usableEquity"`
	EquityNeeded float64 `json:"equityNeeded"`
}

// Shortfall is the missing equity.
func (w FeasibilityWarning) Shortfall() float64 { return w.EquityNeeded - w.UsableEquity }

func (w FeasibilityWarning) Error() string {
	return fmt.Sprintf("not enough equity at year %d to buy property, usable equity: %.2f, equity needed: %.2f", w.Year, w.UsableEquity, w.EquityNeeded)
}
