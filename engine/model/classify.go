package model

import "strings"

// Index is a derived, read-only view over a location set: lookups by id,
// parent id, and children — built once per sync (spec.md §5, "Shared
// resources ... derived maps (locationsById, locationParentById,
// orbitInfo) are single-writer").
type Index struct {
	ByID     map[string]*Location
	Children map[string][]string
	order    []string
}

// NewIndex builds an Index over locations. The slice backing Locations is
// copied so callers retain stable pointers into the Index's own storage.
func NewIndex(locations []Location) *Index {
	idx := &Index{
		ByID:     make(map[string]*Location, len(locations)),
		Children: make(map[string][]string, len(locations)),
		order:    make([]string, 0, len(locations)),
	}
	store := make([]Location, len(locations))
	copy(store, locations)
	for i := range store {
		l := &store[i]
		idx.ByID[l.ID] = l
		idx.order = append(idx.order, l.ID)
	}
	for i := range store {
		l := &store[i]
		if l.ParentID != "" {
			idx.Children[l.ParentID] = append(idx.Children[l.ParentID], l.ID)
		}
	}
	return idx
}

// IDs returns all location ids in insertion order.
func (idx *Index) IDs() []string { return idx.order }

// Ancestors returns the id chain from loc up to (and including) the root,
// nearest ancestor first.
func (idx *Index) Ancestors(id string) []string {
	var chain []string
	cur, ok := idx.ByID[id]
	for ok && cur.ParentID != "" {
		chain = append(chain, cur.ParentID)
		cur, ok = idx.ByID[cur.ParentID]
	}
	return chain
}

// AncestorBody returns the nearest ancestor whose id begins with "grp_"
// and is a body group (per spec.md §3: "ids beginning grp_ denote
// bodies"), or "" if none is found.
func (idx *Index) AncestorBody(id string) string {
	for _, a := range idx.Ancestors(id) {
		if l, ok := idx.ByID[a]; ok && l.IsGroup && strings.HasPrefix(a, "grp_") {
			if !strings.HasSuffix(a, "_orbits") && !strings.HasSuffix(a, "_moons") &&
				!strings.HasSuffix(a, "_lpoints") && !strings.HasSuffix(a, "_sites") {
				return a
			}
		}
	}
	return ""
}

// SolarGroup returns the top-level heliocentric zone a location belongs
// to: the body directly under grp_sun (spec.md's "Heliocentric zone").
func (idx *Index) SolarGroup(id string) string {
	chain := append(idx.Ancestors(id), id)
	for i := len(chain) - 1; i >= 0; i-- {
		a := chain[i]
		if l, ok := idx.ByID[a]; ok && l.ParentID == "grp_sun" {
			return a
		}
	}
	return ""
}

// InLocalOrbitGroup reports whether id sits under a "*_orbits" or
// "*_moons"/"*_moonlets" subtree, and returns that subtree's owning body.
func (idx *Index) InLocalOrbitGroup(id string) (bodyID string, ok bool) {
	for _, a := range idx.Ancestors(id) {
		if strings.HasSuffix(a, "_orbits") || strings.HasSuffix(a, "_moons") || strings.HasSuffix(a, "_moonlets") {
			return idx.AncestorBody(a), true
		}
	}
	return "", false
}

// InLagrangeGroup reports whether id sits under a "*_lpoints" subtree.
func (idx *Index) InLagrangeGroup(id string) (bodyID string, ok bool) {
	for _, a := range idx.Ancestors(id) {
		if strings.HasSuffix(a, "_lpoints") {
			return idx.AncestorBody(a), true
		}
	}
	return "", false
}

// greekTrojanSuffixes names the Lagrange sub-groups 60 degrees off their
// primary's heliocentric orbit, which project like the primary itself
// (spec.md §4.1 rule 2 exception) rather than through local-orbit
// expansion.
var greekTrojanSuffixes = []string{"_greek", "_trojan", "_l4", "_l5"}

// IsGreekTrojan reports whether id (a Lagrange point) belongs to a
// Greek/Trojan camp group.
func IsGreekTrojan(id string) bool {
	lower := strings.ToLower(id)
	for _, suf := range greekTrojanSuffixes {
		if strings.Contains(lower, suf) {
			return true
		}
	}
	return false
}

// Classify computes the LocationKind for a single location within idx.
func Classify(idx *Index, id string, ringCenters map[string]string) LocationKind {
	l, ok := idx.ByID[id]
	if !ok {
		return KindGeneric
	}
	if id == "grp_sun" {
		return KindZoneRoot
	}
	if center, isRing := ringCenters[id]; isRing {
		_ = center
		return KindOrbitRing
	}
	if l.IsGroup {
		if l.ParentID == "grp_sun" {
			return KindPlanet
		}
		if strings.HasSuffix(id, "_orbits") || strings.HasSuffix(id, "_moons") ||
			strings.HasSuffix(id, "_lpoints") || strings.HasSuffix(id, "_sites") {
			return KindGeneric // organizational sub-groups, not rendered directly
		}
		return KindMoon
	}
	if _, ok := idx.InLagrangeGroup(id); ok {
		return KindLagrange
	}
	if _, ok := idx.InLocalOrbitGroup(id); ok {
		if strings.Contains(id, "ast") || strings.Contains(id, "belt") {
			return KindAsteroid
		}
		return KindMoonlet
	}
	if strings.HasSuffix(id, "_sites") || strings.Contains(id, "_site_") {
		return KindSurfaceSite
	}
	if _, ok := ringCenters[l.ParentID]; ok {
		return KindOrbitNode
	}
	return KindGeneric
}

// ClassifyAll classifies every location in idx, returning a copy of the
// location set with Kind (and, for rings, RingCenter) populated.
func ClassifyAll(idx *Index, ringCenters map[string]string) []Location {
	out := make([]Location, 0, len(idx.order))
	for _, id := range idx.order {
		l := *idx.ByID[id]
		l.Kind = Classify(idx, id, ringCenters)
		if l.Kind == KindOrbitRing {
			l.RingID = id
			l.RingCenter = ringCenters[id]
		}
		out = append(out, l)
	}
	return out
}
