// Package interaction implements pointer hit-testing and context-menu
// modeling for the orbital map (spec.md §4.6), grounded on the
// edge-triggered mouse state in engine/input/input.go and the
// ClickKind/UiClick click-event vocabulary from sim_gen/protocol.go,
// generalized into a single priority-ordered hit-test chain.
package interaction

import "math"

// ClickKind identifies which mouse button produced an event.
type ClickKind int

const (
	ClickLeft ClickKind = iota
	ClickRight
	ClickDouble
)

// TargetKind identifies what a hit-test resolved to.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetShip
	TargetDockedChip
	TargetOrbitRing
	TargetLocation
	TargetBodyGroup
)

// Minimum screen-pixel hit radii (spec.md §4.6).
const (
	MinShipHitScreenPx = 14.0
	MinLocHitScreenPx  = 10.0
	OrbitRingHitPx     = 16.0
	BodyGroupHitPx     = 24.0
)

// Candidate is one hit-testable entity on the current frame.
type Candidate struct {
	ID     string
	Kind   TargetKind
	X, Y   float64 // world position
	Radius float64 // world-space hit radius (0 uses the kind's default)

	// Visible gates chip candidates (spec.md §4.6: "nearest visible chip").
	Visible bool
}

// Hit is the resolved hit-test result.
type Hit struct {
	ID   string
	Kind TargetKind
}

// Resolve finds the single best target for a pointer at world (px, py),
// trying each kind in the spec's priority order and returning the first
// kind with any candidate in range (nearest wins within that kind).
func Resolve(candidates []Candidate, px, py, zoom float64) Hit {
	order := []TargetKind{TargetShip, TargetDockedChip, TargetOrbitRing, TargetLocation, TargetBodyGroup}
	for _, kind := range order {
		if hit, ok := nearestOfKind(candidates, kind, px, py, zoom); ok {
			return hit
		}
	}
	return Hit{Kind: TargetNone}
}

func nearestOfKind(candidates []Candidate, kind TargetKind, px, py, zoom float64) (Hit, bool) {
	var best Candidate
	bestDist := math.Inf(1)
	found := false

	for _, c := range candidates {
		if c.Kind != kind {
			continue
		}
		if kind == TargetDockedChip && !c.Visible {
			continue
		}

		var d float64
		var within bool
		switch kind {
		case TargetOrbitRing:
			d = math.Abs(math.Hypot(px-c.X, py-c.Y) - c.Radius)
			within = d <= OrbitRingHitPx/zoom
		default:
			d = math.Hypot(px-c.X, py-c.Y)
			r := c.Radius
			switch kind {
			case TargetShip:
				if minR := MinShipHitScreenPx / zoom; r < minR {
					r = minR
				}
			case TargetLocation:
				if minR := MinLocHitScreenPx / zoom; r > minR {
					// location hit radius is capped at the min, per spec
					r = minR
				} else if r == 0 {
					r = minR
				}
			case TargetBodyGroup:
				if r == 0 {
					r = BodyGroupHitPx / zoom
				}
			}
			within = d <= r
		}

		if within && d < bestDist {
			best = c
			bestDist = d
			found = true
		}
	}

	if !found {
		return Hit{}, false
	}
	return Hit{ID: best.ID, Kind: kind}, true
}
