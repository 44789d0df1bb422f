package curves

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"orbitalmap/engine/model"
)

// hohmannSamples is the fixed radius-profile resolution (spec.md §4.3:
// "sampled at 96 points").
const hohmannSamples = 96

// compositeArcSamples is the resolution used when a Hohmann leg is
// flattened into a composite route (spec.md §4.3: "arc's native 97").
const compositeArcSamples = 97

// minSweep is the minimum angular sweep enforced so near-aligned
// endpoints still render a visible arc (spec.md §4.3).
const minSweep = 0.05

// HohmannArcCurve is a half-ellipse around the Sun connecting two
// circular-orbit radii, used as the geometric model for interplanetary
// transit visualization (spec.md §4.3, GLOSSARY "Hohmann arc").
type HohmannArcCurve struct {
	Sun       model.Point
	Endpoints Endpoints

	points []model.Point
	cum    []float64
}

// NewHohmannArcCurve builds the arc from endpoint world positions
// (already ring-radius-snapped and ring-extended by the caller per
// spec.md §4.3) around sun.
func NewHohmannArcCurve(sun, from, to model.Point, ep Endpoints) *HohmannArcCurve {
	theta1 := math.Atan2(from.Y-sun.Y, from.X-sun.X)
	theta2 := math.Atan2(to.Y-sun.Y, to.X-sun.X)

	sweep := shortestSweep(theta1, theta2)
	if math.Abs(sweep) < minSweep {
		if sweep < 0 {
			sweep = -minSweep
		} else {
			sweep = minSweep
		}
	}

	r1 := floats.Norm([]float64{from.X - sun.X, from.Y - sun.Y}, 2)
	r2 := floats.Norm([]float64{to.X - sun.X, to.Y - sun.Y}, 2)

	points := make([]model.Point, hohmannSamples)
	rMin, rMax := r1, r2
	outerFirst := true
	if rMin > rMax {
		rMin, rMax = rMax, rMin
		outerFirst = false
	}
	// Ellipse semi-latus-rectum/eccentricity for a transfer orbit with
	// periapsis rMin and apoapsis rMax.
	a := (rMin + rMax) / 2
	e := (rMax - rMin) / (rMax + rMin)
	p := a * (1 - e*e)
	if p < 1e-9 {
		p = rMin
	}

	for i := 0; i < hohmannSamples; i++ {
		frac := float64(i) / float64(hohmannSamples-1)
		// nu sweeps the true anomaly across the half ellipse: 0..pi if
		// the transfer starts at periapsis (outer bound growing), or
		// pi..2pi if it starts at apoapsis (inner bound shrinking).
		var nu float64
		if outerFirst {
			nu = frac * math.Pi
		} else {
			nu = math.Pi + frac*math.Pi
		}
		r := p / (1 + e*math.Cos(nu))
		angle := theta1 + sweep*frac
		points[i] = model.Point{
			X: sun.X + r*math.Cos(angle),
			Y: sun.Y + r*math.Sin(angle),
		}
	}
	// Pin exact endpoints (the sampled ellipse can be off by float error
	// at the boundary nu values).
	points[0] = from
	points[len(points)-1] = to

	return &HohmannArcCurve{
		Sun:       sun,
		Endpoints: ep,
		points:    points,
		cum:       cumulativeLength(points),
	}
}

// shortestSweep returns the signed angular delta from theta1 to theta2
// along the shorter CCW/CW path, bounded in (-pi, pi].
func shortestSweep(theta1, theta2 float64) float64 {
	d := math.Mod(theta2-theta1+math.Pi, 2*math.Pi) - math.Pi
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// Point samples the arc at normalized parameter t in [0,1].
func (h *HohmannArcCurve) Point(t float64) model.Point {
	return pointAtDistance(h.points, h.cum, clamp01(t)*h.cum[len(h.cum)-1])
}

// Tangent returns the central-difference tangent at t.
func (h *HohmannArcCurve) Tangent(t float64) model.Point {
	const dt = 0.003
	p1 := h.Point(clamp01(t - dt))
	p2 := h.Point(clamp01(t + dt))
	return model.Point{X: p2.X - p1.X, Y: p2.Y - p1.Y}
}

// Length returns the total sampled arc length.
func (h *HohmannArcCurve) Length() float64 { return h.cum[len(h.cum)-1] }

// Warp returns a copy of the curve translated per-frame to track live
// endpoint positions.
func (h *HohmannArcCurve) Warp(w Warp) Curve {
	if w.Negligible() {
		return h
	}
	n := len(h.points)
	out := &HohmannArcCurve{Sun: h.Sun, Endpoints: h.Endpoints}
	out.points = make([]model.Point, n)
	for i, p := range h.points {
		frac := float64(i) / float64(n-1)
		out.points[i] = warpPoint(p, frac, w)
	}
	out.cum = cumulativeLength(out.points)
	return out
}

// SampleForComposite returns the native 97-point arc samples for
// stitching into a composite route.
func (h *HohmannArcCurve) SampleForComposite() []model.Point {
	if len(h.points) == compositeArcSamples {
		return h.points
	}
	out := make([]model.Point, compositeArcSamples)
	for i := range out {
		out[i] = h.Point(float64(i) / float64(compositeArcSamples-1))
	}
	return out
}

// SweptArea returns the signed area enclosed by the sweep, used by the
// invariant in spec.md §8: "The signed area swept by a Hohmann arc is
// <= pi * max(r1, r2)^2".
func (h *HohmannArcCurve) SweptArea() float64 {
	var area float64
	for i := 1; i < len(h.points); i++ {
		a, b := h.points[i-1], h.points[i]
		area += (a.X-h.Sun.X)*(b.Y-h.Sun.Y) - (b.X-h.Sun.X)*(a.Y-h.Sun.Y)
	}
	return area / 2
}
