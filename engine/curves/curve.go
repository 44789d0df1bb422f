// Package curves implements the transit curve engine from spec.md §4.3:
// construction, caching, and per-frame "warping" of single-leg (Bézier
// and Hohmann half-ellipse) and composite multi-leg transit arcs.
//
// Curve is the polymorphic interface recommended in spec.md §9 ("Curve
// polymorphism"), replacing a runtime type-string dispatcher with three
// concrete implementers: BezierCurve, HohmannArcCurve, CompositeCurve.
package curves

import (
	"math"

	"orbitalmap/engine/model"
)

// Curve is a sampleable, warpable transit path. t is always in [0, 1].
type Curve interface {
	// Point returns the world-space position at parameter t.
	Point(t float64) model.Point
	// Tangent returns the tangent direction at parameter t via central
	// difference (spec.md §4.3); the vector is not normalized.
	Tangent(t float64) model.Point
	// Length returns the curve's total arc length in world units.
	Length() float64
	// Warp returns a new Curve with its endpoints translated to track
	// live body positions, without regenerating the underlying arc
	// (spec.md §4.3 "Warp").
	Warp(w Warp) Curve
}

// Warp holds the per-frame endpoint displacement computed from live vs.
// original body positions at curve-construction time.
type Warp struct {
	DStartX, DStartY float64
	DEndX, DEndY     float64
}

// Negligible reports whether a warp is small enough to skip (avoids
// needless cumDist recomputation every frame for stationary endpoints).
func (w Warp) Negligible() bool {
	const eps = 1e-6
	return abs(w.DStartX) < eps && abs(w.DStartY) < eps && abs(w.DEndX) < eps && abs(w.DEndY) < eps
}

func (w Warp) negate() Warp {
	return Warp{DStartX: -w.DStartX, DStartY: -w.DStartY, DEndX: -w.DEndX, DEndY: -w.DEndY}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// warpPoint applies the time-weighted endpoint displacement to a single
// polyline sample.
func warpPoint(p model.Point, frac float64, w Warp) model.Point {
	return model.Point{
		X: p.X + (1-frac)*w.DStartX + frac*w.DEndX,
		Y: p.Y + (1-frac)*w.DStartY + frac*w.DEndY,
	}
}

// Endpoints is the bookkeeping every curve carries so a future frame can
// warp it: the solar group (or body) each endpoint is tracked against,
// and the endpoint's projected position at curve-construction time.
type Endpoints struct {
	TrackStartID   string
	TrackStartOrig model.Point
	TrackEndID     string
	TrackEndOrig   model.Point
}

// cumulativeLength recomputes cumDist for a polyline, enforcing the
// invariant from spec.md §8: cumDist[0] = 0, monotonically non-decreasing.
func cumulativeLength(points []model.Point) []float64 {
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		cum[i] = cum[i-1] + math.Hypot(dx, dy)
	}
	return cum
}

// pointAtDistance walks a polyline's cumulative-distance table and
// linearly interpolates the position at arc-length d.
func pointAtDistance(points []model.Point, cum []float64, d float64) model.Point {
	if len(points) == 0 {
		return model.Point{}
	}
	if d <= cum[0] {
		return points[0]
	}
	if d >= cum[len(cum)-1] {
		return points[len(points)-1]
	}
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] < d {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return points[0]
	}
	segLen := cum[lo] - cum[lo-1]
	var frac float64
	if segLen > 1e-12 {
		frac = (d - cum[lo-1]) / segLen
	}
	a, b := points[lo-1], points[lo]
	return model.Point{X: a.X + (b.X-a.X)*frac, Y: a.Y + (b.Y-a.Y)*frac}
}

// fracAtDistance is the converse of pointAtDistance's interpolation: for
// a polyline parameterized 0..1 by index, returns the t in [0,1] the
// distance d falls at.
func fracAtDistance(cum []float64, d float64) float64 {
	n := len(cum)
	if n < 2 {
		return 0
	}
	total := cum[n-1]
	if total <= 1e-12 {
		return 0
	}
	if d <= 0 {
		return 0
	}
	if d >= total {
		return 1
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] < d {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0
	}
	segLen := cum[lo] - cum[lo-1]
	var frac float64
	if segLen > 1e-12 {
		frac = (d - cum[lo-1]) / segLen
	}
	idxT := (float64(lo-1) + frac) / float64(n-1)
	return idxT
}
