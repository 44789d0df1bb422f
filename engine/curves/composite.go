package curves

import "orbitalmap/engine/model"

// CompositePoint is one sample of a composite route, carrying the
// time-weighted fractional coordinate spec.md §3 requires ("frac ∈
// [0,1] on points is a time-weighted coordinate spanning all legs").
type CompositePoint struct {
	model.Point
	Frac float64
}

// LegBound records one leg's [startFrac, endFrac] span within a
// composite curve (spec.md §3).
type LegBound struct {
	StartFrac, EndFrac float64
}

// CompositeCurve stitches multiple single-leg curves into one polyline
// parameterized by time across all legs (spec.md §4.3).
type CompositeCurve struct {
	Points    []CompositePoint
	cum       []float64
	LegBounds []LegBound
}

// LegSampler produces the fixed-resolution sample points for one leg
// (BezierCurve.SampleForComposite or HohmannArcCurve.SampleForComposite).
type LegSampler interface {
	SampleForComposite() []model.Point
}

// NewCompositeCurve concatenates each leg's sampled polyline (dropping
// duplicate join points) and assigns each point a frac equal to
// (sum of tof over finished legs + localFrac*thisLegTof) / sum(tof)
// (spec.md §4.3).
func NewCompositeCurve(legSamples []LegSampler, legTofs []float64) *CompositeCurve {
	var totalTof float64
	for _, tof := range legTofs {
		totalTof += tof
	}
	if totalTof <= 0 {
		totalTof = 1
	}

	var points []CompositePoint
	var legBounds []LegBound
	var elapsed float64

	for i, sampler := range legSamples {
		samples := sampler.SampleForComposite()
		tof := legTofs[i]
		startFrac := elapsed / totalTof
		n := len(samples)
		for j, p := range samples {
			if i > 0 && j == 0 {
				// Drop the duplicate join point shared with the
				// previous leg's last sample.
				continue
			}
			localFrac := 0.0
			if n > 1 {
				localFrac = float64(j) / float64(n-1)
			}
			frac := (elapsed + localFrac*tof) / totalTof
			points = append(points, CompositePoint{Point: p, Frac: frac})
		}
		elapsed += tof
		endFrac := elapsed / totalTof
		legBounds = append(legBounds, LegBound{StartFrac: startFrac, EndFrac: endFrac})
	}
	if len(points) > 0 {
		points[len(points)-1].Frac = 1
		legBounds[len(legBounds)-1].EndFrac = 1
	}

	pts := make([]model.Point, len(points))
	for i, cp := range points {
		pts[i] = cp.Point
	}
	return &CompositeCurve{
		Points:    points,
		cum:       cumulativeLength(pts),
		LegBounds: legBounds,
	}
}

// fracs returns the monotonically non-decreasing frac coordinates for
// binary search.
func (c *CompositeCurve) fracs() []float64 {
	fs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		fs[i] = p.Frac
	}
	return fs
}

// distAtT implements "point(t): binary-search points by frac <= t,
// linearly interpolate to get a polyline distance, then interpolate
// position by that distance" (spec.md §4.3).
func (c *CompositeCurve) distAtT(t float64) float64 {
	t = clamp01(t)
	n := len(c.Points)
	if n == 0 {
		return 0
	}
	if t <= c.Points[0].Frac {
		return c.cum[0]
	}
	if t >= c.Points[n-1].Frac {
		return c.cum[n-1]
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if c.Points[mid].Frac < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return c.cum[0]
	}
	f0, f1 := c.Points[lo-1].Frac, c.Points[lo].Frac
	var localT float64
	if f1-f0 > 1e-12 {
		localT = (t - f0) / (f1 - f0)
	}
	return c.cum[lo-1] + (c.cum[lo]-c.cum[lo-1])*localT
}

// Point samples the composite curve at normalized time t in [0,1].
func (c *CompositeCurve) Point(t float64) model.Point {
	if len(c.Points) == 0 {
		return model.Point{}
	}
	pts := make([]model.Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = p.Point
	}
	return pointAtDistance(pts, c.cum, c.distAtT(t))
}

// Tangent returns the central-difference tangent at t (spec.md §4.3:
// "central difference at ±0.003").
func (c *CompositeCurve) Tangent(t float64) model.Point {
	const h = 0.003
	p1 := c.Point(clamp01(t - h))
	p2 := c.Point(clamp01(t + h))
	return model.Point{X: p2.X - p1.X, Y: p2.Y - p1.Y}
}

// Length returns the total polyline length across all legs.
func (c *CompositeCurve) Length() float64 {
	if len(c.cum) == 0 {
		return 0
	}
	return c.cum[len(c.cum)-1]
}

// Warp translates every sample by its time-weighted endpoint
// displacement and recomputes cumDist (spec.md §4.3).
func (c *CompositeCurve) Warp(w Warp) Curve {
	if w.Negligible() {
		return c
	}
	out := &CompositeCurve{LegBounds: c.LegBounds}
	out.Points = make([]CompositePoint, len(c.Points))
	pts := make([]model.Point, len(c.Points))
	for i, p := range c.Points {
		wp := warpPoint(p.Point, p.Frac, w)
		out.Points[i] = CompositePoint{Point: wp, Frac: p.Frac}
		pts[i] = wp
	}
	out.cum = cumulativeLength(pts)
	return out
}

// LegBoundsCoverUnitInterval checks the invariant from spec.md §8: each
// leg's [startFrac, endFrac] are disjoint and cover [0, 1].
func (c *CompositeCurve) LegBoundsCoverUnitInterval() bool {
	if len(c.LegBounds) == 0 {
		return false
	}
	if c.LegBounds[0].StartFrac != 0 {
		return false
	}
	for i := 1; i < len(c.LegBounds); i++ {
		if c.LegBounds[i].StartFrac != c.LegBounds[i-1].EndFrac {
			return false
		}
	}
	return c.LegBounds[len(c.LegBounds)-1].EndFrac == 1
}
