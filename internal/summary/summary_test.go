package summary

import (
	"testing"
	"time"

	"healthdash/domain/records"
)

func table(rows ...records.Record) *records.Table {
	return records.NewTable("test", rows)
}

func rec(gender string, billing records.Amount) records.Record {
	admitted := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	return records.Record{
		Age:       40,
		Gender:    gender,
		Condition: "Diabetes",
		Provider:  "Aetna",
		Billing:   billing,
		Admitted:  admitted,
		YearMonth: records.YearMonthOf(admitted),
	}
}

func TestSummary_MissingExcludedFromMeanButCounted(t *testing.T) {
	// One parsable amount and one coercion failure: the mean covers only
	// the present value while the record count covers both rows.
	tbl := table(
		rec("Male", records.NewAmount(100)),
		rec("Female", records.MissingAmount()),
	)

	if got := RecordCount(tbl); got != 2 {
		t.Errorf("RecordCount = %d, want 2", got)
	}

	avg, ok := AverageBilling(tbl)
	if !ok {
		t.Fatal("expected a defined average")
	}
	if avg != 100 {
		t.Errorf("AverageBilling = %v, want 100", avg)
	}
}

func TestSummary_AllMissingIsUndefined(t *testing.T) {
	tbl := table(
		rec("Male", records.MissingAmount()),
		rec("Female", records.MissingAmount()),
	)

	if _, ok := AverageBilling(tbl); ok {
		t.Error("average over all-missing billing must be undefined")
	}

	stats := Compute(tbl)
	if stats.AverageBillingOK {
		t.Error("Compute must carry the undefined marker through")
	}
	if stats.RecordCount != 2 {
		t.Errorf("RecordCount = %d, want 2", stats.RecordCount)
	}
}

func TestSummary_EmptyTable(t *testing.T) {
	stats := Compute(table())
	if stats.RecordCount != 0 || stats.AverageBillingOK {
		t.Errorf("empty table summary = %+v", stats)
	}
}
