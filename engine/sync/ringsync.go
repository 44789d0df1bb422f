package sync

import "orbitalmap/engine/model"

// SyncRingCenters keeps every orbit ring's rendered center aligned with
// its center body's current (possibly still-interpolating) projected
// position (spec.md §4.7: "Orbit-ring centers are kept in sync with
// the interpolated body positions").
func SyncRingCenters(rings []model.OrbitRingInfo, bodyPositions map[string]model.Point) []model.OrbitRingInfo {
	out := make([]model.OrbitRingInfo, len(rings))
	copy(out, rings)
	for i := range out {
		if p, ok := bodyPositions[out[i].CenterID]; ok {
			out[i].CenterX = p.X
			out[i].CenterY = p.Y
		}
	}
	return out
}
