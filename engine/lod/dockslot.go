package lod

import "sort"

// DockSlotMinChip and DockSlotMaxChip bound the docked-chip badge's
// screen-pixel size (spec.md §4.4: "chip size is clamped to a fixed
// screen-px range").
const (
	DockSlotMinChip = 10.0
	DockSlotMaxChip = 28.0
)

// ShipSlot is one ship docked at a location, with an optional explicit
// slot assignment.
type ShipSlot struct {
	ShipID       string
	ExplicitSlot int // -1 if unassigned
}

// AssignDockSlots assigns each ship a centered-row slot index, honoring
// explicit slots first and filling the rest in sorted-id order, so the
// resulting set of indices is exactly {0, 1, ..., n-1} (spec.md §8
// boundary test).
func AssignDockSlots(ships []ShipSlot) map[string]int {
	n := len(ships)
	slots := make(map[string]int, n)
	taken := make([]bool, n)

	var remaining []ShipSlot
	for _, s := range ships {
		if s.ExplicitSlot >= 0 && s.ExplicitSlot < n && !taken[s.ExplicitSlot] {
			slots[s.ShipID] = s.ExplicitSlot
			taken[s.ExplicitSlot] = true
		} else {
			remaining = append(remaining, s)
		}
	}

	sort.Slice(remaining, func(i, j int) bool { return remaining[i].ShipID < remaining[j].ShipID })

	next := 0
	for _, s := range remaining {
		for taken[next] {
			next++
		}
		slots[s.ShipID] = next
		taken[next] = true
	}
	return slots
}

// DockSlotPositions lays out n slots as a centered row below the
// docking anchor, with spacing fixed in screen pixels (spec.md §4.4).
func DockSlotPositions(anchorX, anchorY, spacingPx float64, n int) []struct{ X, Y float64 } {
	out := make([]struct{ X, Y float64 }, n)
	totalWidth := float64(n-1) * spacingPx
	startX := anchorX - totalWidth/2
	for i := 0; i < n; i++ {
		out[i] = struct{ X, Y float64 }{X: startX + float64(i)*spacingPx, Y: anchorY}
	}
	return out
}

// DockedChipSize clamps a count-derived badge size into the fixed
// screen-px range (spec.md §4.4).
func DockedChipSize(count int) float64 {
	// Grows linearly with count (1.2 px per ship) until the max clamp,
	// so a chip of 2 ships isn't the same size as a chip of 20.
	size := DockSlotMinChip + float64(count)*1.2
	if size > DockSlotMaxChip {
		size = DockSlotMaxChip
	}
	if size < DockSlotMinChip {
		size = DockSlotMinChip
	}
	return size
}
