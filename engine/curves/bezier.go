package curves

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"orbitalmap/engine/model"
)

// bezierSamples is the lazy polyline resolution for same-primary and
// local-orbit hops (spec.md §4.3: "Sampled lazily into a 128-point
// polyline on first use").
const bezierSamples = 128

// compositeBezierSamples is the resolution used when a Bézier leg is
// flattened into a composite route (spec.md §4.3: "Bézier 65 points").
const compositeBezierSamples = 65

// BezierCurve is a cubic Bézier arc used for same-primary or local-orbit
// transfers, with tangents drawn from the orbital tangent at each
// endpoint (spec.md §4.3).
type BezierCurve struct {
	P0, C1, C2, P3 model.Point
	Endpoints      Endpoints

	points []model.Point
	cum    []float64
}

// NewBezierCurve builds a cubic Bézier between from and to, with control
// points placed along the tangent direction at each endpoint, bent
// perpendicular by bendSign and clamped to a fraction of chord length
// and the local semi-major axis (spec.md §4.3).
func NewBezierCurve(from, to model.Point, fromTangent, toTangent model.Point, localSemiMajor float64, bendSign float64, ep Endpoints) *BezierCurve {
	chord := math.Hypot(to.X-from.X, to.Y-from.Y)
	const chordFraction = 0.4
	const semiMajorFraction = 0.6
	armLen := chord * chordFraction
	if maxArm := localSemiMajor * semiMajorFraction; maxArm > 0 && armLen > maxArm {
		armLen = maxArm
	}

	ft := normalize(fromTangent)
	tt := normalize(toTangent)

	c1 := model.Point{X: from.X + ft.X*armLen, Y: from.Y + ft.Y*armLen}
	c2 := model.Point{X: to.X - tt.X*armLen, Y: to.Y - tt.Y*armLen}

	// Perpendicular bend, sign chosen by ascending/descending radius
	// transfer (spec.md §4.3).
	const bendFraction = 0.18
	bend := armLen * bendFraction * bendSign
	perp := perpendicular(model.Point{X: to.X - from.X, Y: to.Y - from.Y})
	c1.X += perp.X * bend
	c1.Y += perp.Y * bend
	c2.X += perp.X * bend
	c2.Y += perp.Y * bend

	return &BezierCurve{P0: from, C1: c1, C2: c2, P3: to, Endpoints: ep}
}

func normalize(p model.Point) model.Point {
	l := floats.Norm([]float64{p.X, p.Y}, 2)
	if l < 1e-9 {
		return model.Point{X: 1, Y: 0}
	}
	return model.Point{X: p.X / l, Y: p.Y / l}
}

// rot90 is the 90-degree rotation matrix applied to a unit vector to
// get the bend's perpendicular direction, via gonum/mat the same way
// the Hohmann radius work leans on gonum/floats for vector norms.
var rot90 = mat.NewDense(2, 2, []float64{0, -1, 1, 0})

func perpendicular(p model.Point) model.Point {
	n := normalize(p)
	v := mat.NewVecDense(2, []float64{n.X, n.Y})
	var out mat.VecDense
	out.MulVec(rot90, v)
	return model.Point{X: out.AtVec(0), Y: out.AtVec(1)}
}

func evalCubic(p0, c1, c2, p3 model.Point, t float64) model.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return model.Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

func (b *BezierCurve) ensureSampled(n int) {
	if len(b.points) == n {
		return
	}
	b.points = make([]model.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		b.points[i] = evalCubic(b.P0, b.C1, b.C2, b.P3, t)
	}
	b.cum = cumulativeLength(b.points)
}

// Point samples the Bézier at normalized parameter t in [0,1].
func (b *BezierCurve) Point(t float64) model.Point {
	b.ensureSampled(bezierSamples)
	t = clamp01(t)
	idx := t * float64(len(b.points)-1)
	lo := int(math.Floor(idx))
	if lo >= len(b.points)-1 {
		return b.points[len(b.points)-1]
	}
	frac := idx - float64(lo)
	a, c := b.points[lo], b.points[lo+1]
	return model.Point{X: a.X + (c.X-a.X)*frac, Y: a.Y + (c.Y-a.Y)*frac}
}

// Tangent returns the central-difference tangent at t (spec.md §4.3).
func (b *BezierCurve) Tangent(t float64) model.Point {
	const h = 0.003
	p1 := b.Point(clamp01(t - h))
	p2 := b.Point(clamp01(t + h))
	return model.Point{X: p2.X - p1.X, Y: p2.Y - p1.Y}
}

// Length returns the total sampled arc length.
func (b *BezierCurve) Length() float64 {
	b.ensureSampled(bezierSamples)
	return b.cum[len(b.cum)-1]
}

// Warp returns a copy of the curve translated per-frame so its endpoints
// track live body positions (spec.md §4.3).
func (b *BezierCurve) Warp(w Warp) Curve {
	if w.Negligible() {
		return b
	}
	b.ensureSampled(bezierSamples)
	n := len(b.points)
	out := &BezierCurve{P0: b.P0, C1: b.C1, C2: b.C2, P3: b.P3, Endpoints: b.Endpoints}
	out.points = make([]model.Point, n)
	for i, p := range b.points {
		frac := float64(i) / float64(n-1)
		out.points[i] = warpPoint(p, frac, w)
	}
	out.cum = cumulativeLength(out.points)
	return out
}

// SampleForComposite returns the fixed 65-point flattening used when
// this leg is stitched into a composite curve (spec.md §4.3).
func (b *BezierCurve) SampleForComposite() []model.Point {
	save := b.points
	b.points = nil
	b.ensureSampled(compositeBezierSamples)
	out := b.points
	b.points = save
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
