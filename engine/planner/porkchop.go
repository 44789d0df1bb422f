package planner

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Porkchop is the decoded departure-time x time-of-flight Δv grid
// rendered as a heatmap (spec.md §4.8: "rendered as a 50 x 50
// heatmap... Δv color-mapped from min Δv up to min(max, 3 * min)").
type Porkchop struct {
	DepartureTimes []float64
	Tofs           []float64
	DeltaV         [][]float64 // [departureIndex][tofIndex]
}

// DeltaVAt reads Δv at the given grid cell, per spec.md §4.8's TOF
// slider behavior ("reads Δv from the grid at
// (currentDepartureIndex, tofIndex)").
func (g *Porkchop) DeltaVAt(sel TofSelection) (float64, bool) {
	if sel.DepartureIndex < 0 || sel.DepartureIndex >= len(g.DeltaV) {
		return 0, false
	}
	row := g.DeltaV[sel.DepartureIndex]
	if sel.TofIndex < 0 || sel.TofIndex >= len(row) {
		return 0, false
	}
	return row[sel.TofIndex], true
}

// flatten returns every finite Δv value in the grid, in row-major order.
func (g *Porkchop) flatten() []float64 {
	var out []float64
	for _, row := range g.DeltaV {
		out = append(out, row...)
	}
	return out
}

// ColorScale is the min/max Δv bounds the heatmap maps onto its
// dark-blue -> cyan -> green -> yellow -> red palette.
type ColorScale struct {
	Min float64
	Max float64
}

// Scale computes the grid's color scale: from the minimum Δv up to
// min(observedMax, 3*min), per spec.md §4.8.
func (g *Porkchop) Scale() ColorScale {
	vals := g.flatten()
	if len(vals) == 0 {
		return ColorScale{}
	}
	min := floats.Min(vals)
	max := floats.Max(vals)
	scaleCap := 3 * min
	if max < scaleCap {
		scaleCap = max
	}
	return ColorScale{Min: min, Max: scaleCap}
}

// Normalize maps a Δv value onto [0, 1] under scale, clamped at both
// ends so values above the cap still render at full red.
func (s ColorScale) Normalize(dv float64) float64 {
	if s.Max <= s.Min {
		return 0
	}
	t := (dv - s.Min) / (s.Max - s.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// BestWindow is one low-Δv entry surfaced in the planner's "top
// windows" table.
type BestWindow struct {
	DepartureIndex int
	TofIndex       int
	DeltaV         float64
}

// BestSolutionMarkers returns every grid cell at or below the
// quantile-th percentile of all Δv values, sorted ascending — the
// heatmap's best-solution markers and bottom table of top windows
// (spec.md §4.8), using gonum/stat's empirical quantile the same way
// the velocity-report aggregation pipeline derives its percentile
// bands.
func (g *Porkchop) BestSolutionMarkers(quantile float64) []BestWindow {
	vals := g.flatten()
	if len(vals) == 0 {
		return nil
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	threshold := stat.Quantile(quantile, stat.Empirical, sorted, nil)

	var out []BestWindow
	for di, row := range g.DeltaV {
		for ti, dv := range row {
			if dv <= threshold {
				out = append(out, BestWindow{DepartureIndex: di, TofIndex: ti, DeltaV: dv})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeltaV < out[j].DeltaV })
	return out
}
