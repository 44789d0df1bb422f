package model

import "math"

// BuildOrbitRings derives the renderable orbit-ring set from a projected,
// classified location list: a ring's own projected position gives its
// radius and base angle relative to its center body (spec.md §3: "radius
// (derived from ring-node projected position)"). VisualPeriodS is purely
// cosmetic (ships drift around the ring on this period independent of
// game physics), so it is synthesized from the radius rather than read
// off the wire.
func BuildOrbitRings(locations []Location) []OrbitRingInfo {
	byID := make(map[string]Location, len(locations))
	for _, l := range locations {
		byID[l.ID] = l
	}

	var out []OrbitRingInfo
	for _, l := range locations {
		if l.Kind != KindOrbitRing {
			continue
		}
		center, ok := byID[l.RingCenter]
		if !ok {
			continue
		}
		dx, dy := l.RX-center.RX, l.RY-center.RY
		radius := math.Hypot(dx, dy)
		out = append(out, OrbitRingInfo{
			ID:            l.ID,
			CenterID:      l.RingCenter,
			CenterX:       center.RX,
			CenterY:       center.RY,
			Radius:        radius,
			BaseAngle:     math.Atan2(dy, dx),
			VisualPeriodS: 60 + radius*0.05,
		})
	}
	return out
}
