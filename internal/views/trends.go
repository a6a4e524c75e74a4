package views

import (
	"sort"
	"time"

	"healthdash/domain/chart"
	"healthdash/domain/records"
	"healthdash/internal/signals"
)

const trendsTitle = "Admission Trends Over Time"

// AdmissionTrends counts admissions per year-month bucket, under the
// condition filter, drawn as a line or bar chart per the chart-type
// signal. Only months present in the filtered data appear; empty months
// are not synthesized.
type AdmissionTrends struct {
	table *records.Table
}

func NewAdmissionTrends(t *records.Table) *AdmissionTrends {
	return &AdmissionTrends{table: t}
}

func (v *AdmissionTrends) Name() string { return "admission-trends" }

func (v *AdmissionTrends) DependsOn() []string {
	return []string{signals.SignalCondition, signals.SignalChartType}
}

func (v *AdmissionTrends) Empty() chart.Spec {
	return chart.NoData(chart.KindLine, trendsTitle)
}

func (v *AdmissionTrends) Render(sel signals.Selection) chart.Spec {
	rows := records.FilterCondition(v.table.Rows(), sel.Condition)
	if len(rows) == 0 {
		spec := v.Empty()
		if sel.ChartType == chart.KindBar {
			spec.Kind = chart.KindBar
		}
		return spec
	}

	counts := make(map[string]int)
	// Ordering is by admission time, not by the bucket's string form, so
	// a future key-format change cannot reorder the series.
	earliest := make(map[string]time.Time)
	for _, r := range rows {
		counts[r.YearMonth]++
		if t, ok := earliest[r.YearMonth]; !ok || r.Admitted.Before(t) {
			earliest[r.YearMonth] = r.Admitted
		}
	}

	buckets := make([]string, 0, len(counts))
	for bucket := range counts {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return earliest[buckets[i]].Before(earliest[buckets[j]])
	})

	values := make([]float64, len(buckets))
	for i, bucket := range buckets {
		values[i] = float64(counts[bucket])
	}

	kind := sel.ChartType
	if kind != chart.KindLine && kind != chart.KindBar {
		kind = chart.KindLine
	}

	return chart.Spec{
		Kind:   kind,
		Title:  trendsTitle,
		XLabel: "Month",
		YLabel: "Admissions",
		Series: []chart.Series{{
			Labels: buckets,
			Values: values,
		}},
	}
}
