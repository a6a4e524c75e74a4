package views

import (
	"healthdash/domain/chart"
	"healthdash/domain/records"
	"healthdash/internal/signals"
)

const billingTitle = "Billing Amount Distribution"

// BillingDistribution is a 10-bin histogram of billing amounts under the
// gender filter and the slider ceiling. Rows with missing billing are
// excluded by the ceiling comparison.
type BillingDistribution struct {
	table *records.Table
}

func NewBillingDistribution(t *records.Table) *BillingDistribution {
	return &BillingDistribution{table: t}
}

func (v *BillingDistribution) Name() string { return "billing-distribution" }

func (v *BillingDistribution) DependsOn() []string {
	return []string{signals.SignalGender, signals.SignalBillingCeiling}
}

func (v *BillingDistribution) Empty() chart.Spec {
	return chart.NoData(chart.KindHistogram, billingTitle)
}

func (v *BillingDistribution) Render(sel signals.Selection) chart.Spec {
	rows := records.FilterGender(v.table.Rows(), sel.Gender)
	rows = records.FilterBillingMax(rows, sel.BillingCeiling)
	if len(rows) == 0 {
		return v.Empty()
	}

	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Billing.Value
	}

	edges := binEdges(values, histogramBins)

	return chart.Spec{
		Kind:   chart.KindHistogram,
		Title:  billingTitle,
		XLabel: "Billing Amount",
		YLabel: "Count",
		Series: []chart.Series{{
			Labels: binLabels(edges),
			Values: binCounts(values, edges),
		}},
	}
}
