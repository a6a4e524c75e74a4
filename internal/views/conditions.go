package views

import (
	"healthdash/domain/chart"
	"healthdash/domain/records"
	"healthdash/internal/signals"
)

const conditionTitle = "Medical Condition Distribution"

// ConditionDistribution is a pie of the share of rows per medical
// condition, under the gender filter
type ConditionDistribution struct {
	table *records.Table
}

func NewConditionDistribution(t *records.Table) *ConditionDistribution {
	return &ConditionDistribution{table: t}
}

func (v *ConditionDistribution) Name() string { return "condition-distribution" }

func (v *ConditionDistribution) DependsOn() []string {
	return []string{signals.SignalGender}
}

func (v *ConditionDistribution) Empty() chart.Spec {
	return chart.NoData(chart.KindPie, conditionTitle)
}

func (v *ConditionDistribution) Render(sel signals.Selection) chart.Spec {
	rows := records.FilterGender(v.table.Rows(), sel.Gender)
	if len(rows) == 0 {
		return v.Empty()
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		if _, seen := counts[r.Condition]; !seen {
			order = append(order, r.Condition)
		}
		counts[r.Condition]++
	}

	total := float64(len(rows))
	shares := make([]float64, len(order))
	for i, condition := range order {
		shares[i] = float64(counts[condition]) / total
	}

	return chart.Spec{
		Kind:  chart.KindPie,
		Title: conditionTitle,
		Series: []chart.Series{{
			Labels: order,
			Values: shares,
		}},
	}
}
