// Package chart defines the renderer-agnostic chart specification that view
// functions produce and the browser-side renderer consumes.
package chart

// Kind identifies how a spec should be drawn
type Kind string

const (
	KindHistogram  Kind = "histogram"
	KindPie        Kind = "pie"
	KindLine       Kind = "line"
	KindBar        Kind = "bar"
	KindGroupedBar Kind = "grouped_bar"
)

// Series is one labelled sequence of values within a chart
type Series struct {
	Name   string    `json:"name,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values"`
}

// Spec describes a chart abstractly: kind plus encodings plus title.
// A Spec with NoData set carries no series and renders as an explicit
// empty state rather than an aggregate over zero rows.
type Spec struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	XLabel string   `json:"xLabel,omitempty"`
	YLabel string   `json:"yLabel,omitempty"`
	NoData bool     `json:"noData,omitempty"`
	Series []Series `json:"series"`
}

// NoData builds the well-defined empty outcome for a view whose filtered
// input has no rows
func NoData(kind Kind, title string) Spec {
	return Spec{
		Kind:   kind,
		Title:  title,
		NoData: true,
		Series: []Series{},
	}
}

// TotalValues sums every value across all series. Histogram specs use this
// to assert that bin counts account for every input row.
func (s Spec) TotalValues() float64 {
	total := 0.0
	for _, series := range s.Series {
		for _, v := range series.Values {
			total += v
		}
	}
	return total
}
