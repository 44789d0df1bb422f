package model

import "testing"

// fixtureTree builds a small but complete location tree exercising every
// LocationKind branch in Classify: a zone root, a planet with local-orbit,
// moon, Lagrange (plain and Greek/Trojan), organizational sub-groups, an
// orbit ring with an orbit node, a surface site, and a generic leaf.
func fixtureTree() ([]Location, map[string]string) {
	locs := []Location{
		{ID: "grp_sun", ParentID: "", IsGroup: true},
		{ID: "grp_earth", ParentID: "grp_sun", IsGroup: true},

		{ID: "grp_earth_orbits", ParentID: "grp_earth", IsGroup: true},
		{ID: "loc_leo", ParentID: "grp_earth_orbits", IsGroup: false},
		{ID: "loc_earth_belt_rock", ParentID: "grp_earth_orbits", IsGroup: false},

		{ID: "grp_earth_moons", ParentID: "grp_earth", IsGroup: true},
		{ID: "grp_luna", ParentID: "grp_earth", IsGroup: true},

		{ID: "grp_earth_lpoints", ParentID: "grp_earth", IsGroup: true},
		{ID: "loc_earth_l1", ParentID: "grp_earth_lpoints", IsGroup: false},
		{ID: "loc_earth_l4_greek", ParentID: "grp_earth_lpoints", IsGroup: false},

		{ID: "ring_earth_leo", ParentID: "grp_earth", IsGroup: false},
		{ID: "loc_ring_node_a", ParentID: "ring_earth_leo", IsGroup: false},

		{ID: "grp_earth_sites", ParentID: "grp_earth", IsGroup: true},
		{ID: "loc_earth_site_alpha", ParentID: "grp_earth_sites", IsGroup: false},

		{ID: "loc_earth_misc", ParentID: "grp_earth", IsGroup: false},
	}
	ringCenters := map[string]string{"ring_earth_leo": "grp_earth"}
	return locs, ringCenters
}

func TestClassifyEveryLocationKind(t *testing.T) {
	locs, ringCenters := fixtureTree()
	idx := NewIndex(locs)

	cases := []struct {
		id   string
		want LocationKind
	}{
		{"grp_sun", KindZoneRoot},
		{"grp_earth", KindPlanet},
		{"grp_earth_orbits", KindGeneric}, // organizational sub-group
		{"loc_leo", KindMoonlet},
		{"loc_earth_belt_rock", KindAsteroid},
		{"grp_earth_moons", KindGeneric}, // organizational sub-group
		{"grp_luna", KindMoon},
		{"grp_earth_lpoints", KindGeneric}, // organizational sub-group
		{"loc_earth_l1", KindLagrange},
		{"loc_earth_l4_greek", KindLagrange},
		{"ring_earth_leo", KindOrbitRing},
		{"loc_ring_node_a", KindOrbitNode},
		{"grp_earth_sites", KindGeneric}, // organizational sub-group
		{"loc_earth_site_alpha", KindSurfaceSite},
		{"loc_earth_misc", KindGeneric},
	}

	for _, c := range cases {
		t.Run(c.id, func(t *testing.T) {
			got := Classify(idx, c.id, ringCenters)
			if got != c.want {
				t.Errorf("Classify(%q) = %v, want %v", c.id, got, c.want)
			}
		})
	}
}

// TestIsGreekTrojanDistinguishesCampsFromPlainLagrangePoints exercises
// the rule-2 projection exception separately from Classify's (uniform)
// KindLagrange dispatch above: only the 60-degree Greek/Trojan camps
// report true.
func TestIsGreekTrojanDistinguishesCampsFromPlainLagrangePoints(t *testing.T) {
	if IsGreekTrojan("loc_earth_l1") {
		t.Error("a plain L1 point must not be classified as a Greek/Trojan camp")
	}
	if !IsGreekTrojan("loc_earth_l4_greek") {
		t.Error("an _greek-suffixed L4 point must be classified as a Greek/Trojan camp")
	}
	if !IsGreekTrojan("loc_jupiter_trojan_camp") {
		t.Error("a _trojan-suffixed point must be classified as a Greek/Trojan camp")
	}
}

func TestClassifyUnknownIDReturnsGeneric(t *testing.T) {
	idx := NewIndex(nil)
	if got := Classify(idx, "does_not_exist", nil); got != KindGeneric {
		t.Errorf("Classify on an unknown id = %v, want KindGeneric", got)
	}
}

func TestClassifyAllPopulatesRingFields(t *testing.T) {
	locs, ringCenters := fixtureTree()
	idx := NewIndex(locs)
	out := ClassifyAll(idx, ringCenters)

	var ring *Location
	for i := range out {
		if out[i].ID == "ring_earth_leo" {
			ring = &out[i]
		}
	}
	if ring == nil {
		t.Fatal("expected ring_earth_leo in ClassifyAll output")
	}
	if ring.Kind != KindOrbitRing {
		t.Errorf("ring.Kind = %v, want KindOrbitRing", ring.Kind)
	}
	if ring.RingID != "ring_earth_leo" || ring.RingCenter != "grp_earth" {
		t.Errorf("ring RingID/RingCenter = %q/%q, want ring_earth_leo/grp_earth", ring.RingID, ring.RingCenter)
	}
}
