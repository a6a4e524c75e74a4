package views

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// histogramBins matches the dashboard's fixed 10-bin histograms
const histogramBins = 10

// binEdges returns bins+1 equal-width dividers spanning the data range.
// The last divider is nudged just past the maximum because stat.Histogram
// requires every value to sit strictly below it.
func binEdges(values []float64, bins int) []float64 {
	min := floats.Min(values)
	max := floats.Max(values)
	if min == max {
		// Degenerate single-point range: one bin holds everything
		return []float64{min, math.Nextafter(max, math.Inf(1))}
	}
	edges := floats.Span(make([]float64, bins+1), min, max)
	edges[len(edges)-1] = math.Nextafter(max, math.Inf(1))
	return edges
}

// binCounts places values into the given edges. stat.Histogram wants its
// input sorted, so count over a sorted copy.
func binCounts(values, edges []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Histogram(nil, edges, sorted, nil)
}

// binLabels renders "lo-hi" range labels for each bin
func binLabels(edges []float64) []string {
	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s-%s", formatEdge(edges[i]), formatEdge(edges[i+1]))
	}
	return labels
}

func formatEdge(v float64) string {
	if math.Abs(v) >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
