package scene

import (
	"sort"

	"orbitalmap/engine/lod"
	"orbitalmap/engine/model"
)

// DockAssignment is the resolved per-location docking layout: ships
// rendered individually at an orbit-ring location, or collapsed into a
// single aggregate chip at a non-orbit location (spec.md §4.4: "Docked
// ships at non-orbit locations are hidden and represented by an
// aggregate docked chip").
type DockAssignment struct {
	Slots     map[string]int // shipID -> slot index, only set for individually-rendered ships
	ChipCount int             // 0 unless ships are aggregated into a chip
	ChipSize  float64
}

// AssignDocking groups ships docked at a single location and decides
// between individual dock-slot rendering (orbit-ring locations) and
// aggregate chip rendering (everywhere else).
func AssignDocking(locKind model.LocationKind, ships []model.Ship) DockAssignment {
	if len(ships) == 0 {
		return DockAssignment{}
	}

	if locKind != model.KindOrbitRing && locKind != model.KindOrbitNode {
		return DockAssignment{ChipCount: len(ships), ChipSize: lod.DockedChipSize(len(ships))}
	}

	slotShips := make([]lod.ShipSlot, len(ships))
	for i, s := range ships {
		explicit := -1
		if s.DockSlot != nil {
			explicit = *s.DockSlot
		}
		slotShips[i] = lod.ShipSlot{ShipID: s.ID, ExplicitSlot: explicit}
	}
	return DockAssignment{Slots: lod.AssignDockSlots(slotShips)}
}

// DockedAt groups a ship list into per-location id buckets, sorted by
// ship id within each bucket for deterministic rendering order.
func DockedAt(ships []model.Ship) map[string][]model.Ship {
	byLoc := make(map[string][]model.Ship)
	for _, s := range ships {
		if s.Status != model.StatusDocked {
			continue
		}
		byLoc[s.LocationID] = append(byLoc[s.LocationID], s)
	}
	for _, bucket := range byLoc {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
	}
	return byLoc
}
