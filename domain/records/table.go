package records

import (
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// Table is the immutable, ordered collection of records shared by every
// view. Callers must treat the row slice as read-only; nothing in the
// process mutates it after load.
type Table struct {
	id     string
	source string
	rows   []Record
}

// NewTable builds a table over the given rows and assigns it a dataset id
func NewTable(source string, rows []Record) *Table {
	return &Table{
		id:     uuid.NewString(),
		source: source,
		rows:   rows,
	}
}

// ID returns the dataset id assigned at load time
func (t *Table) ID() string {
	return t.id
}

// Source returns the path the table was loaded from ("synthetic" for
// generated data)
func (t *Table) Source() string {
	return t.source
}

// Len returns the total row count, rows with missing billing included
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the backing row slice. Read-only by convention.
func (t *Table) Rows() []Record {
	return t.rows
}

// Genders returns the distinct gender values in first-seen order
func (t *Table) Genders() []string {
	return distinct(t.rows, func(r Record) string { return r.Gender })
}

// Conditions returns the distinct medical conditions in first-seen order
func (t *Table) Conditions() []string {
	return distinct(t.rows, func(r Record) string { return r.Condition })
}

// Providers returns the distinct insurance providers in first-seen order
func (t *Table) Providers() []string {
	return distinct(t.rows, func(r Record) string { return r.Provider })
}

// BillingValues returns every present billing amount, missing excluded
func (t *Table) BillingValues() []float64 {
	values := make([]float64, 0, len(t.rows))
	for _, r := range t.rows {
		if r.Billing.Valid {
			values = append(values, r.Billing.Value)
		}
	}
	return values
}

// BillingRange returns the min and max of present billing amounts.
// ok is false when every billing value is missing.
func (t *Table) BillingRange() (min, max float64, ok bool) {
	values := t.BillingValues()
	if len(values) == 0 {
		return 0, 0, false
	}
	min, err := stats.Min(values)
	if err != nil {
		return 0, 0, false
	}
	max, err = stats.Max(values)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}

// BillingQuantiles returns the 0/25/50/75/100 percentile marks of present
// billing amounts, used to label the billing-ceiling slider. Returns nil
// when every billing value is missing.
func (t *Table) BillingQuantiles() []float64 {
	values := t.BillingValues()
	if len(values) == 0 {
		return nil
	}
	marks := make([]float64, 0, 5)
	for _, p := range []float64{0, 25, 50, 75, 100} {
		var q float64
		var err error
		if p == 0 {
			q, err = stats.Min(values)
		} else if p == 100 {
			q, err = stats.Max(values)
		} else {
			q, err = stats.Percentile(values, p)
		}
		if err != nil {
			return nil
		}
		marks = append(marks, q)
	}
	return marks
}

func distinct(rows []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		k := key(r)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
