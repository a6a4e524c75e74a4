package records

import (
	"testing"
	"time"
)

func row(gender, condition, provider string, age int, billing Amount, admitted time.Time) Record {
	return Record{
		Age:       age,
		Gender:    gender,
		Condition: condition,
		Provider:  provider,
		Billing:   billing,
		Admitted:  admitted,
		YearMonth: YearMonthOf(admitted),
	}
}

func sampleRows() []Record {
	jan := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)
	return []Record{
		row("Male", "Diabetes", "Aetna", 34, NewAmount(1200), jan),
		row("Female", "Asthma", "Cigna", 58, NewAmount(800), mar),
		row("Female", "Diabetes", "Aetna", 41, MissingAmount(), jan),
		row("Male", "Asthma", "Medicare", 70, NewAmount(3000), mar),
	}
}

func TestFilterGender_UnsetIsIdentity(t *testing.T) {
	rows := sampleRows()
	filtered := FilterGender(rows, "")
	if len(filtered) != len(rows) {
		t.Fatalf("unset filter changed row count: %d != %d", len(filtered), len(rows))
	}
	// Identity means the same backing slice, not a copy
	if &filtered[0] != &rows[0] {
		t.Error("unset filter should return the input slice unchanged")
	}
}

func TestFilterGender_SetMatchesOnly(t *testing.T) {
	filtered := FilterGender(sampleRows(), "Female")
	if len(filtered) != 2 {
		t.Fatalf("expected 2 female rows, got %d", len(filtered))
	}
	for _, r := range filtered {
		if r.Gender != "Female" {
			t.Errorf("filter leaked row with gender %q", r.Gender)
		}
	}
}

func TestFilterGender_UnknownValueMatchesNothing(t *testing.T) {
	filtered := FilterGender(sampleRows(), "Other")
	if len(filtered) != 0 {
		t.Fatalf("expected no rows for unknown gender, got %d", len(filtered))
	}
}

func TestFilterBillingMax_ExcludesMissing(t *testing.T) {
	filtered := FilterBillingMax(sampleRows(), 5000)
	if len(filtered) != 3 {
		t.Fatalf("expected 3 rows with present billing, got %d", len(filtered))
	}
	for _, r := range filtered {
		if !r.Billing.Valid {
			t.Error("missing billing must never pass the ceiling comparison")
		}
	}
}

func TestFilterBillingMax_Ceiling(t *testing.T) {
	filtered := FilterBillingMax(sampleRows(), 1000)
	if len(filtered) != 1 || filtered[0].Billing.Value != 800 {
		t.Fatalf("expected only the 800 row under ceiling 1000, got %d rows", len(filtered))
	}
}

func TestTable_EnumsFirstSeenOrder(t *testing.T) {
	table := NewTable("test", sampleRows())

	genders := table.Genders()
	if len(genders) != 2 || genders[0] != "Male" || genders[1] != "Female" {
		t.Errorf("unexpected gender order: %v", genders)
	}

	providers := table.Providers()
	if len(providers) != 3 || providers[0] != "Aetna" || providers[2] != "Medicare" {
		t.Errorf("unexpected provider order: %v", providers)
	}
}

func TestTable_BillingRangeSkipsMissing(t *testing.T) {
	table := NewTable("test", sampleRows())
	min, max, ok := table.BillingRange()
	if !ok {
		t.Fatal("expected a billing range")
	}
	if min != 800 || max != 3000 {
		t.Errorf("expected range [800, 3000], got [%v, %v]", min, max)
	}
}

func TestTable_BillingRangeAllMissing(t *testing.T) {
	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	table := NewTable("test", []Record{
		row("Male", "Diabetes", "Aetna", 30, MissingAmount(), jan),
	})
	if _, _, ok := table.BillingRange(); ok {
		t.Error("all-missing billing must not produce a range")
	}
	if marks := table.BillingQuantiles(); marks != nil {
		t.Errorf("all-missing billing must not produce quantiles, got %v", marks)
	}
}

func TestTable_BillingQuantiles(t *testing.T) {
	table := NewTable("test", sampleRows())
	marks := table.BillingQuantiles()
	if len(marks) != 5 {
		t.Fatalf("expected 5 quantile marks, got %d", len(marks))
	}
	if marks[0] != 800 || marks[4] != 3000 {
		t.Errorf("expected marks to span [800, 3000], got %v", marks)
	}
	for i := 1; i < len(marks); i++ {
		if marks[i] < marks[i-1] {
			t.Errorf("quantile marks must be non-decreasing: %v", marks)
		}
	}
}

func TestYearMonthOf(t *testing.T) {
	d := time.Date(2023, 4, 28, 13, 5, 0, 0, time.UTC)
	if got := YearMonthOf(d); got != "2023-04" {
		t.Errorf("expected 2023-04, got %s", got)
	}
}
