// Package signals owns the transient UI-selection state and the explicit
// observer registration that re-evaluates dependent views when a signal
// changes. The dependency wiring is deliberate and minimal: each view
// declares the signal names it reads, and Set re-invokes exactly those.
package signals

import (
	"fmt"
	"sync"

	"healthdash/domain/chart"
	"healthdash/domain/records"
	"healthdash/internal"
	"healthdash/internal/errors"
)

// Signal names shared with the control surface
const (
	SignalGender         = "gender"
	SignalCondition      = "condition"
	SignalChartType      = "chart-type"
	SignalBillingCeiling = "billing-ceiling"
)

// Selection is a point-in-time snapshot of every signal value. "" for the
// enum filters means no restriction.
type Selection struct {
	Gender         string
	Condition      string
	ChartType      chart.Kind
	BillingCeiling float64
}

// View is an observer: a pure function from (table, selection) to a chart
// spec, plus the signal names it depends on. The table is bound at
// construction time, never fetched from ambient state.
type View interface {
	Name() string
	DependsOn() []string
	Render(sel Selection) chart.Spec
	// Empty is the view's well-defined no-data outcome, used both for
	// empty filter results and as the degraded result when a render
	// fails.
	Empty() chart.Spec
}

// Dispatcher holds current signal values and the signal -> views
// subscription index. All mutation goes through Set; evaluation is
// synchronous.
type Dispatcher struct {
	mu     sync.RWMutex
	sel    Selection
	minMax [2]float64 // billing slider bounds, fixed at construction
	views  []View
	subs   map[string][]View
	logger *internal.Logger
}

// NewDispatcher derives signal defaults from the loaded table: chart type
// line, no enum filters, billing ceiling at the table maximum.
func NewDispatcher(table *records.Table) *Dispatcher {
	min, max, ok := table.BillingRange()
	if !ok {
		// Degenerate all-missing billing column: slider collapses to a
		// single point and the billing view stays in its no-data state.
		min, max = 0, 0
	}
	return &Dispatcher{
		sel: Selection{
			ChartType:      chart.KindLine,
			BillingCeiling: max,
		},
		minMax: [2]float64{min, max},
		subs:   make(map[string][]View),
		logger: internal.DefaultLogger,
	}
}

// Register subscribes a view to each signal it declares
func (d *Dispatcher) Register(v View) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.views = append(d.views, v)
	for _, name := range v.DependsOn() {
		d.subs[name] = append(d.subs[name], v)
	}
}

// Snapshot returns the current selection
func (d *Dispatcher) Snapshot() Selection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sel
}

// BillingBounds returns the fixed slider range derived from the table
func (d *Dispatcher) BillingBounds() (min, max float64) {
	return d.minMax[0], d.minMax[1]
}

// Set validates and stores one signal value, then synchronously
// re-evaluates the views subscribed to that signal. The returned map is
// keyed by view name and holds only the affected views' fresh specs.
func (d *Dispatcher) Set(name string, value interface{}) (map[string]chart.Spec, error) {
	d.mu.Lock()
	sel, err := d.apply(d.sel, name, value)
	if err != nil {
		d.mu.Unlock()
		return nil, err
	}
	d.sel = sel
	dependents := d.subs[name]
	d.mu.Unlock()

	d.logger.Debug("signal %s set, re-evaluating %d views", name, len(dependents))

	specs := make(map[string]chart.Spec, len(dependents))
	for _, v := range dependents {
		specs[v.Name()] = d.evaluate(v, sel)
	}
	return specs, nil
}

// apply computes the next selection for a single signal change
func (d *Dispatcher) apply(sel Selection, name string, value interface{}) (Selection, error) {
	switch name {
	case SignalGender:
		s, err := stringValue(name, value)
		if err != nil {
			return sel, err
		}
		sel.Gender = s
	case SignalCondition:
		s, err := stringValue(name, value)
		if err != nil {
			return sel, err
		}
		sel.Condition = s
	case SignalChartType:
		s, err := stringValue(name, value)
		if err != nil {
			return sel, err
		}
		switch chart.Kind(s) {
		case chart.KindLine, chart.KindBar:
			sel.ChartType = chart.Kind(s)
		default:
			return sel, errors.InvalidInput(fmt.Sprintf("chart-type must be line or bar, got %q", s))
		}
	case SignalBillingCeiling:
		f, err := floatValue(name, value)
		if err != nil {
			return sel, err
		}
		// Clamp to the table's billing range rather than rejecting;
		// sliders can overshoot on resize.
		if f < d.minMax[0] {
			f = d.minMax[0]
		}
		if f > d.minMax[1] {
			f = d.minMax[1]
		}
		sel.BillingCeiling = f
	default:
		return sel, errors.InvalidInput("unknown signal: " + name)
	}
	return sel, nil
}

// EvaluateAll renders every registered view against the current selection
func (d *Dispatcher) EvaluateAll() map[string]chart.Spec {
	d.mu.RLock()
	sel := d.sel
	views := d.views
	d.mu.RUnlock()

	specs := make(map[string]chart.Spec, len(views))
	for _, v := range views {
		specs[v.Name()] = d.evaluate(v, sel)
	}
	return specs
}

// Evaluate renders a single view by name against the current selection
func (d *Dispatcher) Evaluate(name string) (chart.Spec, error) {
	d.mu.RLock()
	sel := d.sel
	views := d.views
	d.mu.RUnlock()

	for _, v := range views {
		if v.Name() == name {
			return d.evaluate(v, sel), nil
		}
	}
	return chart.Spec{}, errors.NotFound("view " + name)
}

// evaluate never lets a view failure propagate: the table is trusted
// after load, so anything unexpected degrades to the view's empty spec.
func (d *Dispatcher) evaluate(v View, sel Selection) (spec chart.Spec) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("view %s failed: %v", v.Name(), r)
			spec = v.Empty()
		}
	}()
	return v.Render(sel)
}

func stringValue(name string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return "", errors.InvalidInput(fmt.Sprintf("signal %s expects a string value", name))
	}
}

func floatValue(name string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, errors.InvalidInput(fmt.Sprintf("signal %s expects a numeric value", name))
	}
}
