package planner

import "math"

// StandardGravity is g0 in the Tsiolkovsky rocket equation (spec.md
// §4.8: "Tsiolkovsky with g0 = 9.80665").
const StandardGravity = 9.80665

// FuelNeeded returns the propellant mass required for a burn of
// deltaV, given the ship's specific impulse (seconds) and dry mass,
// via the Tsiolkovsky rocket equation: dv = isp*g0*ln(m0/m1).
func FuelNeeded(deltaV, ispS, dryMass float64) float64 {
	if ispS <= 0 || dryMass <= 0 {
		return math.Inf(1)
	}
	m1 := dryMass
	m0 := m1 * math.Exp(deltaV/(ispS*StandardGravity))
	return m0 - m1
}

// ShipState is the subset of model.Ship the feasibility gate reads.
type ShipState struct {
	DeltaVRemaining float64
	FuelMass        float64
	ISP             float64
	DryMass         float64

	// SurfaceThrustToWeight is the minimum thrust-to-weight ratio over
	// every surface site on the path; 0 (or any value >= 1) if the path
	// has no surface legs.
	SurfaceThrustToWeight float64
	// WasteHeatSurplus is positive when the ship is overheating.
	WasteHeatSurplus float64
}

// Feasibility is the confirm-button gate result (spec.md §4.8).
type Feasibility struct {
	DeltaVNeeded  float64
	FuelNeeded    float64
	OK            bool
	FailureReason string
}

// CheckFeasibility evaluates the confirm-button gate: enough Δv margin
// and fuel, every surface site on the path thrust-capable, and the
// ship not overheating.
func CheckFeasibility(ship ShipState, deltaVNeeded float64) Feasibility {
	fuel := FuelNeeded(deltaVNeeded, ship.ISP, ship.DryMass)
	f := Feasibility{DeltaVNeeded: deltaVNeeded, FuelNeeded: fuel, OK: true}

	switch {
	case deltaVNeeded > ship.DeltaVRemaining:
		f.OK = false
		f.FailureReason = "insufficient delta-v remaining"
	case fuel > ship.FuelMass:
		f.OK = false
		f.FailureReason = "insufficient fuel"
	case ship.SurfaceThrustToWeight > 0 && ship.SurfaceThrustToWeight < 1:
		f.OK = false
		f.FailureReason = "thrust-to-weight below 1 at a surface site"
	case ship.WasteHeatSurplus > 0:
		f.OK = false
		f.FailureReason = "ship is overheating"
	}
	return f
}
