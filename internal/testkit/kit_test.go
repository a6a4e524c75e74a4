package testkit

import (
	"testing"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(DefaultGeneratorConfig()).GenerateTable()
	b := NewGenerator(DefaultGeneratorConfig()).GenerateTable()

	if a.Len() != b.Len() {
		t.Fatalf("same seed produced different row counts: %d != %d", a.Len(), b.Len())
	}
	for i := range a.Rows() {
		ra, rb := a.Rows()[i], b.Rows()[i]
		if ra.Gender != rb.Gender || ra.Age != rb.Age || ra.Billing != rb.Billing || !ra.Admitted.Equal(rb.Admitted) {
			t.Fatalf("row %d differs between same-seed runs", i)
		}
	}
}

func TestGenerator_RowShape(t *testing.T) {
	table := SyntheticTable()
	if table.Len() != DefaultGeneratorConfig().RecordCount {
		t.Fatalf("expected %d rows, got %d", DefaultGeneratorConfig().RecordCount, table.Len())
	}

	sawMissing := false
	for _, r := range table.Rows() {
		if r.Age < 18 || r.Age > 89 {
			t.Errorf("age out of range: %d", r.Age)
		}
		if r.YearMonth == "" || r.Admitted.IsZero() {
			t.Error("admission fields must be populated")
		}
		if !r.Billing.Valid {
			sawMissing = true
		}
	}
	if !sawMissing {
		t.Error("expected the generator to produce some missing billing values")
	}

	if len(table.Genders()) != 2 {
		t.Errorf("expected both genders in 500 rows, got %v", table.Genders())
	}
}
