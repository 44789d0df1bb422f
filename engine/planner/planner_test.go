package planner

import (
	"math"
	"testing"

	"orbitalmap/engine/model"
)

func TestNewWithPresetDestStartsAtDestination(t *testing.T) {
	ship := model.Ship{ID: "ship_1", LocationID: "loc_earth"}
	p := New(ship, "loc_mars")
	if p.State != StateDestination || p.ToID != "loc_mars" {
		t.Errorf("preset destination should start in StateDestination, got %+v", p)
	}
}

func TestNewWithoutPresetStartsIdle(t *testing.T) {
	p := New(model.Ship{ID: "ship_1"}, "")
	if p.State != StateIdle {
		t.Errorf("no preset destination should start idle, got %v", p.State)
	}
}

func TestFullHappyPathTransitionsInOrder(t *testing.T) {
	p := New(model.Ship{ID: "ship_1", LocationID: "loc_earth"}, "")
	p.Apply(EventSelectDest, "loc_mars")
	if p.State != StateDestination {
		t.Fatalf("expected StateDestination, got %v", p.State)
	}

	p.Apply(EventQuoteReturned, Quote{LambertDeltaV: 1200})
	if p.State != StateQuoted || p.Quote.LambertDeltaV != 1200 {
		t.Fatalf("expected StateQuoted with quote stored, got %+v", p)
	}

	p.Apply(EventPorkchopReturned, &Porkchop{DeltaV: [][]float64{{1, 2}}})
	if p.State != StatePorkchop || p.Grid == nil {
		t.Fatalf("expected StatePorkchop with grid stored, got %+v", p)
	}

	p.Apply(EventAdjustTof, TofSelection{DepartureIndex: 0, TofIndex: 1})
	if p.Selected.TofIndex != 1 {
		t.Fatalf("expected TOF selection applied, got %+v", p.Selected)
	}

	p.Apply(EventConfirm, nil)
	if p.State != StateSubmitting {
		t.Fatalf("expected StateSubmitting, got %v", p.State)
	}

	p.Submitted()
	if p.State != StateSubmitted {
		t.Fatalf("expected StateSubmitted, got %v", p.State)
	}
}

func TestEventsInvalidForCurrentStateAreNoOps(t *testing.T) {
	p := New(model.Ship{ID: "ship_1"}, "")
	p.Apply(EventPorkchopReturned, &Porkchop{}) // invalid before a quote exists
	if p.State != StateIdle {
		t.Errorf("out-of-order event should be ignored, got %v", p.State)
	}
}

func TestCancelResetsToIdlePreservingShipAndOrigin(t *testing.T) {
	p := New(model.Ship{ID: "ship_1", LocationID: "loc_earth"}, "loc_mars")
	p.Apply(EventQuoteReturned, Quote{})
	p.Apply(EventCancel, nil)
	if p.State != StateIdle || p.ShipID != "ship_1" || p.FromID != "loc_earth" {
		t.Errorf("cancel should reset to idle but keep ship/origin, got %+v", p)
	}
}

func TestFailedReturnsToPorkchopAndRecordsError(t *testing.T) {
	p := New(model.Ship{ID: "ship_1"}, "loc_mars")
	p.Apply(EventQuoteReturned, Quote{})
	p.Apply(EventPorkchopReturned, &Porkchop{})
	p.Apply(EventConfirm, nil)
	p.Failed("server rejected transfer")

	if p.State != StatePorkchop {
		t.Errorf("failure should return to StatePorkchop when a grid exists, got %v", p.State)
	}
	if p.LastError != "server rejected transfer" {
		t.Errorf("expected last error recorded, got %q", p.LastError)
	}
}

func TestFailedWithoutGridReturnsToQuoted(t *testing.T) {
	p := New(model.Ship{ID: "ship_1"}, "loc_mars")
	p.Apply(EventQuoteReturned, Quote{})
	p.Apply(EventConfirm, nil)
	p.Failed("boom")
	if p.State != StateQuoted {
		t.Errorf("failure without a grid should return to StateQuoted, got %v", p.State)
	}
}

func TestPorkchopDeltaVAtReadsSelectedCell(t *testing.T) {
	g := &Porkchop{DeltaV: [][]float64{{1, 2}, {3, 4}}}
	v, ok := g.DeltaVAt(TofSelection{DepartureIndex: 1, TofIndex: 0})
	if !ok || v != 3 {
		t.Errorf("expected (3, true), got (%v, %v)", v, ok)
	}
	_, ok = g.DeltaVAt(TofSelection{DepartureIndex: 5, TofIndex: 0})
	if ok {
		t.Errorf("out-of-range selection should report ok=false")
	}
}

func TestPorkchopScaleCapsAtThreeTimesMin(t *testing.T) {
	g := &Porkchop{DeltaV: [][]float64{{100, 500, 1000}}}
	scale := g.Scale()
	if scale.Min != 100 {
		t.Errorf("expected min=100, got %v", scale.Min)
	}
	if scale.Max != 300 { // min(1000, 3*100) = 300
		t.Errorf("expected scale max capped at 3*min=300, got %v", scale.Max)
	}
}

func TestPorkchopScaleUsesObservedMaxWhenBelowCap(t *testing.T) {
	g := &Porkchop{DeltaV: [][]float64{{100, 150}}}
	scale := g.Scale()
	if scale.Max != 150 {
		t.Errorf("expected scale max = observed max (150) since it's below 3*min, got %v", scale.Max)
	}
}

func TestColorScaleNormalizeClamps(t *testing.T) {
	s := ColorScale{Min: 100, Max: 300}
	if got := s.Normalize(50); got != 0 {
		t.Errorf("below-min should clamp to 0, got %v", got)
	}
	if got := s.Normalize(500); got != 1 {
		t.Errorf("above-max should clamp to 1, got %v", got)
	}
	if got := s.Normalize(200); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("midpoint should normalize to 0.5, got %v", got)
	}
}

func TestBestSolutionMarkersSortedAscending(t *testing.T) {
	g := &Porkchop{DeltaV: [][]float64{{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}}}
	markers := g.BestSolutionMarkers(0.1)
	if len(markers) == 0 {
		t.Fatal("expected at least one best-solution marker")
	}
	for i := 1; i < len(markers); i++ {
		if markers[i].DeltaV < markers[i-1].DeltaV {
			t.Errorf("markers should be sorted ascending by delta-v, got %+v", markers)
		}
	}
}

func TestFuelNeededMatchesTsiolkovsky(t *testing.T) {
	// Classic check: dv = isp*g0*ln(m0/m1); solve fuel for known ratio.
	dryMass := 1000.0
	isp := 300.0
	deltaV := isp * StandardGravity * math.Log(2) // m0/m1 = 2
	fuel := FuelNeeded(deltaV, isp, dryMass)
	want := dryMass // m0 = 2*dryMass, fuel = dryMass
	if math.Abs(fuel-want) > 1e-6 {
		t.Errorf("FuelNeeded = %v, want %v", fuel, want)
	}
}

func TestCheckFeasibilityFailsOnInsufficientDeltaV(t *testing.T) {
	ship := ShipState{DeltaVRemaining: 100, FuelMass: 1e9, ISP: 300, DryMass: 1000}
	f := CheckFeasibility(ship, 500)
	if f.OK {
		t.Errorf("expected infeasible for insufficient delta-v, got %+v", f)
	}
	if f.FailureReason != "insufficient delta-v remaining" {
		t.Errorf("unexpected failure reason: %q", f.FailureReason)
	}
}

func TestCheckFeasibilityFailsOnOverheating(t *testing.T) {
	ship := ShipState{DeltaVRemaining: 1e9, FuelMass: 1e9, ISP: 300, DryMass: 1000, WasteHeatSurplus: 5}
	f := CheckFeasibility(ship, 10)
	if f.OK {
		t.Errorf("expected infeasible while overheating, got %+v", f)
	}
}

func TestCheckFeasibilityPassesWithMargin(t *testing.T) {
	ship := ShipState{DeltaVRemaining: 1e6, FuelMass: 1e9, ISP: 300, DryMass: 1000, SurfaceThrustToWeight: 2}
	f := CheckFeasibility(ship, 100)
	if !f.OK {
		t.Errorf("expected feasible with ample margin, got %+v", f)
	}
}
