package projection

import (
	"math"
	"testing"

	"orbitalmap/engine/model"
)

func sampleLocations() []model.Location {
	return []model.Location{
		{ID: "grp_sun", ParentID: "", IsGroup: true, X: 0, Y: 0},
		{ID: "grp_earth", ParentID: "grp_sun", IsGroup: true, X: 149600000, Y: 0},
		{ID: "grp_earth_orbits", ParentID: "grp_earth", IsGroup: true, X: 149600000, Y: 0},
		{ID: "loc_leo", ParentID: "grp_earth_orbits", IsGroup: false, X: 149600300, Y: 100},
		{ID: "grp_earth_moons", ParentID: "grp_earth", IsGroup: true, X: 149600000, Y: 0},
		{ID: "loc_luna", ParentID: "grp_earth_moons", IsGroup: false, X: 149600000, Y: 384400},
	}
}

func TestLocalOrbitExpansionDistance(t *testing.T) {
	locs := Project(sampleLocations())
	idx := model.NewIndex(locs)

	earth := idx.ByID["grp_earth"]
	leo := idx.ByID["loc_leo"]

	rawOffsetX := leo.X - earth.X
	rawOffsetY := leo.Y - earth.Y
	rawDist := math.Hypot(rawOffsetX, rawOffsetY)

	gotDist := math.Hypot(leo.RX-earth.RX, leo.RY-earth.RY)
	wantDist := rawDist * LocalScale

	if math.Abs(gotDist-wantDist) > 1e-6 {
		t.Errorf("local orbit expansion distance = %v, want %v", gotDist, wantDist)
	}
}

func TestMoonsExpandAroundOwningBody(t *testing.T) {
	locs := Project(sampleLocations())
	idx := model.NewIndex(locs)

	earth := idx.ByID["grp_earth"]
	luna := idx.ByID["loc_luna"]

	gotDist := math.Hypot(luna.RX-earth.RX, luna.RY-earth.RY)
	wantDist := 384400.0 * LocalScale

	if math.Abs(gotDist-wantDist) > 1e-6 {
		t.Errorf("luna expansion distance = %v, want %v", gotDist, wantDist)
	}
}

func TestFallbackWithoutSun(t *testing.T) {
	locs := []model.Location{
		{ID: "loc_orphan", ParentID: "", IsGroup: false, X: 1000, Y: 2000},
	}
	out := Project(locs)
	if out[0].RX != 1000*DeepScale || out[0].RY != 2000*DeepScale {
		t.Errorf("fallback projection = (%v,%v), want (%v,%v)", out[0].RX, out[0].RY, 1000*DeepScale, 2000*DeepScale)
	}
}

// TestRoundTripIdentityScale exercises the invariant from spec.md §8:
// "Re-projecting an already-projected location (with (x, y) set from
// (rx, ry) inverse) yields a fixed point under S_local = 1, HELIO_LINEAR = 1."
func TestRoundTripIdentityScale(t *testing.T) {
	identity := Params{HelioLinear: 1, LocalScale: 1, DeepScale: 1}
	locs := ProjectWithParams(sampleLocations(), identity)

	// Re-project using the projected (rx,ry) as the new raw (x,y).
	reinput := make([]model.Location, len(locs))
	for i, l := range locs {
		reinput[i] = l
		reinput[i].X, reinput[i].Y = l.RX, l.RY
	}
	reprojected := ProjectWithParams(reinput, identity)

	for i := range locs {
		if math.Abs(reprojected[i].RX-locs[i].RX) > 1e-9 || math.Abs(reprojected[i].RY-locs[i].RY) > 1e-9 {
			t.Errorf("location %s: round trip not a fixed point: got (%v,%v) want (%v,%v)",
				locs[i].ID, reprojected[i].RX, reprojected[i].RY, locs[i].RX, locs[i].RY)
		}
	}
}

func TestHeliocentricPreservesAngle(t *testing.T) {
	locs := Project(sampleLocations())
	idx := model.NewIndex(locs)
	sun := idx.ByID["grp_sun"]
	earth := idx.ByID["grp_earth"]

	rawAngle := math.Atan2(earth.Y-sun.Y, earth.X-sun.X)
	projAngle := math.Atan2(earth.RY-sun.RY, earth.RX-sun.RX)

	if math.Abs(rawAngle-projAngle) > 1e-9 {
		t.Errorf("heliocentric projection changed angle: raw=%v proj=%v", rawAngle, projAngle)
	}
}
