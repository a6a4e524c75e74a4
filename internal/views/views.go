package views

import (
	"healthdash/domain/records"
	"healthdash/internal/signals"
)

// RegisterAll constructs every dashboard view over the shared table and
// subscribes each one to the signals it declares
func RegisterAll(d *signals.Dispatcher, t *records.Table) {
	d.Register(NewAgeDistribution(t))
	d.Register(NewConditionDistribution(t))
	d.Register(NewAdmissionTrends(t))
	d.Register(NewBillingDistribution(t))
	d.Register(NewInsuranceComparison(t))
}
