// Package records holds the typed patient-billing table that every view
// derives from. The table is built once at load time and never mutated.
package records

import (
	"time"
)

// Amount is a numeric-or-missing billing value. The zero Amount is
// missing, which keeps an unparsable source value distinct from a genuine
// zero charge.
type Amount struct {
	Value float64
	Valid bool
}

// NewAmount returns a present amount
func NewAmount(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// MissingAmount returns the missing-value marker
func MissingAmount() Amount {
	return Amount{}
}

// Record is one patient-billing row with load-time validated fields.
// YearMonth is derived from Admitted exactly once, at load.
type Record struct {
	Age       int
	Gender    string
	Condition string
	Provider  string
	Billing   Amount
	Admitted  time.Time
	YearMonth string
}

// YearMonthOf truncates a date to its "YYYY-MM" admission bucket. The
// format sorts chronologically as a plain string; grouping code relies on
// that.
func YearMonthOf(t time.Time) string {
	return t.Format("2006-01")
}
