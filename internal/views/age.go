// Package views implements the dashboard's view functions: pure mappings
// from (table, selection) to a chart spec. Views never mutate the table;
// an empty filter result always yields an explicit no-data spec.
package views

import (
	"healthdash/domain/chart"
	"healthdash/domain/records"
	"healthdash/internal/signals"
)

const ageTitle = "Age Distribution by Gender"

// AgeDistribution is a 10-bin age histogram with one series per gender
// present in the (optionally gender-filtered) rows
type AgeDistribution struct {
	table *records.Table
}

func NewAgeDistribution(t *records.Table) *AgeDistribution {
	return &AgeDistribution{table: t}
}

func (v *AgeDistribution) Name() string { return "age-distribution" }

func (v *AgeDistribution) DependsOn() []string {
	return []string{signals.SignalGender}
}

func (v *AgeDistribution) Empty() chart.Spec {
	return chart.NoData(chart.KindHistogram, ageTitle)
}

func (v *AgeDistribution) Render(sel signals.Selection) chart.Spec {
	rows := records.FilterGender(v.table.Rows(), sel.Gender)
	if len(rows) == 0 {
		return v.Empty()
	}

	// Bin edges span all filtered ages so every gender series shares the
	// same buckets and the counts sum to len(rows).
	all := make([]float64, len(rows))
	byGender := make(map[string][]float64)
	var genders []string
	for i, r := range rows {
		age := float64(r.Age)
		all[i] = age
		if _, seen := byGender[r.Gender]; !seen {
			genders = append(genders, r.Gender)
		}
		byGender[r.Gender] = append(byGender[r.Gender], age)
	}

	edges := binEdges(all, histogramBins)
	labels := binLabels(edges)

	series := make([]chart.Series, 0, len(genders))
	for _, g := range genders {
		series = append(series, chart.Series{
			Name:   g,
			Labels: labels,
			Values: binCounts(byGender[g], edges),
		})
	}

	return chart.Spec{
		Kind:   chart.KindHistogram,
		Title:  ageTitle,
		XLabel: "Age",
		YLabel: "Count",
		Series: series,
	}
}
