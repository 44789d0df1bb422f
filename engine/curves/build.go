package curves

import (
	"math"

	"orbitalmap/engine/model"
)

// Endpoint is one resolved transit leg endpoint: its world position at
// the leg's departure/arrival time plus the point it orbits (the Sun for
// an interplanetary leg, the local primary otherwise) and the local
// semi-major axis used to clamp Bézier control points (spec.md §4.3).
type Endpoint struct {
	Position  model.Point
	Center    model.Point
	SemiMajor float64
}

func orbitalTangent(e Endpoint) model.Point {
	return model.Point{X: -(e.Position.Y - e.Center.Y), Y: e.Position.X - e.Center.X}
}

func radiusFromCenter(e Endpoint) float64 {
	return math.Hypot(e.Position.X-e.Center.X, e.Position.Y-e.Center.Y)
}

// NewLegCurve builds the curve for a single leg: a Hohmann half-ellipse
// around the Sun for an interplanetary hop, otherwise a cubic Bézier
// using each endpoint's orbital tangent (spec.md §4.3).
func NewLegCurve(interplanetary bool, sun model.Point, from, to Endpoint) Curve {
	ep := Endpoints{TrackStartOrig: from.Position, TrackEndOrig: to.Position}
	if interplanetary {
		return NewHohmannArcCurve(sun, from.Position, to.Position, ep)
	}

	semiMajor := from.SemiMajor
	if to.SemiMajor > semiMajor {
		semiMajor = to.SemiMajor
	}
	bendSign := 1.0
	if radiusFromCenter(to) < radiusFromCenter(from) {
		bendSign = -1.0
	}
	return NewBezierCurve(from.Position, to.Position, orbitalTangent(from), orbitalTangent(to), semiMajor, bendSign, ep)
}

// EndpointResolver resolves a location's transit endpoint at a given
// game time: its projected position, the point it orbits, and a local
// semi-major axis proxy, pulling from the anchor cache for future/past
// times and the live scene snapshot for "now" (spec.md §4.2/§4.3).
type EndpointResolver func(locationID string, gameTimeSeconds float64) Endpoint

// BuildShipCurve produces the single renderable Curve for ship's transit
// (spec.md §4.3): a composite of each transfer leg's curve when legs are
// known, or one direct leg between the ship's from/to location otherwise.
func BuildShipCurve(ship model.Ship, sun model.Point, resolve EndpointResolver) Curve {
	if len(ship.TransferLegs) == 0 {
		from := resolve(ship.FromLocationID, ship.DepartedAt)
		to := resolve(ship.ToLocationID, ship.ArrivesAt)
		return NewLegCurve(false, sun, from, to)
	}

	samplers := make([]LegSampler, len(ship.TransferLegs))
	tofs := make([]float64, len(ship.TransferLegs))
	for i, leg := range ship.TransferLegs {
		from := resolve(leg.FromID, leg.DepartureTime)
		to := resolve(leg.ToID, leg.ArrivalTime)
		c := NewLegCurve(leg.IsInterplanetary, sun, from, to)
		samplers[i] = c.(LegSampler)
		tofs[i] = leg.TofS
	}
	return NewCompositeCurve(samplers, tofs)
}

// ShipProgress returns the clamped along-path time fraction for a ship
// in transit (spec.md §4.3: "t = (now - departed_at) / (arrives_at -
// departed_at), clamped").
func ShipProgress(ship model.Ship, nowGameSeconds float64) float64 {
	span := ship.ArrivesAt - ship.DepartedAt
	if span <= 0 {
		return 0
	}
	return clamp01((nowGameSeconds - ship.DepartedAt) / span)
}

// ShipFacingAngle returns the ship's facing angle in radians: the
// tangent direction for the first half of the transit, its negation for
// the second half, so the glyph appears to decelerate into arrival
// (spec.md §4.3).
func ShipFacingAngle(c Curve, t float64) float64 {
	tan := c.Tangent(t)
	angle := math.Atan2(tan.Y, tan.X)
	if t > 0.5 {
		angle += math.Pi
	}
	return angle
}
