// Package summary computes the headline statistics shown above the
// charts. Computed once at startup; the table never changes afterwards.
package summary

import (
	"github.com/montanaflynn/stats"

	"healthdash/domain/records"
)

// Stats is the cached startup summary
type Stats struct {
	RecordCount      int
	AverageBilling   float64
	AverageBillingOK bool
}

// Compute derives the summary from the loaded table
func Compute(t *records.Table) Stats {
	avg, ok := AverageBilling(t)
	return Stats{
		RecordCount:      RecordCount(t),
		AverageBilling:   avg,
		AverageBillingOK: ok,
	}
}

// RecordCount counts all rows, including rows with missing billing
func RecordCount(t *records.Table) int {
	return t.Len()
}

// AverageBilling is the mean over present billing amounts. ok is false
// when every amount is missing; the display layer renders that as "N/A".
func AverageBilling(t *records.Table) (float64, bool) {
	values := t.BillingValues()
	if len(values) == 0 {
		return 0, false
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, false
	}
	return mean, true
}
