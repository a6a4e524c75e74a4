package views

import (
	"healthdash/domain/chart"
	"healthdash/domain/records"
	"healthdash/internal/signals"
)

const insuranceTitle = "Insurance Provider Billing Comparison"

// InsuranceComparison sums billing per (provider, condition) pair under
// the gender filter, clustered by provider with one series per condition.
// The aggregated form is a deliberate choice; see DESIGN.md.
type InsuranceComparison struct {
	table *records.Table
}

func NewInsuranceComparison(t *records.Table) *InsuranceComparison {
	return &InsuranceComparison{table: t}
}

func (v *InsuranceComparison) Name() string { return "insurance-comparison" }

func (v *InsuranceComparison) DependsOn() []string {
	return []string{signals.SignalGender}
}

func (v *InsuranceComparison) Empty() chart.Spec {
	return chart.NoData(chart.KindGroupedBar, insuranceTitle)
}

func (v *InsuranceComparison) Render(sel signals.Selection) chart.Spec {
	rows := records.FilterGender(v.table.Rows(), sel.Gender)
	if len(rows) == 0 {
		return v.Empty()
	}

	type pair struct{ provider, condition string }
	sums := make(map[pair]float64)
	var providers, conditions []string
	seenProvider := make(map[string]bool)
	seenCondition := make(map[string]bool)
	for _, r := range rows {
		if !seenProvider[r.Provider] {
			seenProvider[r.Provider] = true
			providers = append(providers, r.Provider)
		}
		if !seenCondition[r.Condition] {
			seenCondition[r.Condition] = true
			conditions = append(conditions, r.Condition)
		}
		if r.Billing.Valid {
			sums[pair{r.Provider, r.Condition}] += r.Billing.Value
		}
	}

	series := make([]chart.Series, 0, len(conditions))
	for _, condition := range conditions {
		values := make([]float64, len(providers))
		for i, provider := range providers {
			values[i] = sums[pair{provider, condition}]
		}
		series = append(series, chart.Series{
			Name:   condition,
			Labels: providers,
			Values: values,
		})
	}

	return chart.Spec{
		Kind:   chart.KindGroupedBar,
		Title:  insuranceTitle,
		XLabel: "Insurance Provider",
		YLabel: "Billing Amount",
		Series: series,
	}
}
