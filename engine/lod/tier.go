// Package lod implements the apparent-pixel-size detail tiering,
// label collision culling, and dock-slot layout from spec.md §4.4.
//
// Tiering is generalized from distance-to-camera apparent size (as a
// 3D renderer would compute it) to zoom-to-screen-pixel apparent size:
// an object's screen-space footprint is worldSize * zoom, and the
// same upgrade/downgrade-with-hysteresis state machine applies.
package lod

// Tier is a detail level assigned to a scene element based on its
// current apparent screen-pixel size.
type Tier int

const (
	// TierCulled hides the element entirely (too small to read).
	TierCulled Tier = iota
	// TierMinimal renders a simplified representation (e.g. belt bands
	// without scatter specks, a ring collapsed to its floor width).
	TierMinimal
	// TierFull renders full detail.
	TierFull
)

func (t Tier) String() string {
	switch t {
	case TierCulled:
		return "Culled"
	case TierMinimal:
		return "Minimal"
	case TierFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// Config defines the apparent-pixel-size thresholds for upgrading to
// each tier, plus a hysteresis fraction that makes downgrading require
// the object to shrink further than the upgrade threshold, preventing
// flicker as zoom crosses a boundary.
type Config struct {
	FullPixels    float64
	MinimalPixels float64
	Hysteresis    float64
}

// DefaultConfig matches the asteroid-belt / ring-width tiering implied
// by spec.md §4.4 ("14 overlapping diffuse bands... plus 32
// deterministic scatter specks", "deep-zoom shrink... floor of ~0.5 px").
func DefaultConfig() Config {
	return Config{
		FullPixels:    24,
		MinimalPixels: 4,
		Hysteresis:    0.2,
	}
}

// NextTier determines the tier for an apparent pixel size, applying
// hysteresis against the element's currently-assigned tier so it does
// not flicker at the threshold boundary.
func NextTier(apparentPx float64, current Tier, cfg Config) Tier {
	downgrade := 1.0 - cfg.Hysteresis

	if apparentPx >= cfg.FullPixels || (current == TierFull && apparentPx >= cfg.FullPixels*downgrade) {
		return TierFull
	}
	if apparentPx >= cfg.MinimalPixels || (current == TierMinimal && apparentPx >= cfg.MinimalPixels*downgrade) {
		return TierMinimal
	}
	return TierCulled
}

// IconLocalScale returns the local scale factor that keeps a body icon
// at a constant target screen-pixel size at any zoom (spec.md §4.4:
// "Its local scale is (targetPx / baseGlyphPx) / zoom").
func IconLocalScale(targetPx, baseGlyphPx, zoom float64) float64 {
	if zoom <= 0 || baseGlyphPx <= 0 {
		return 0
	}
	return (targetPx / baseGlyphPx) / zoom
}

// RingLineWidth returns the screen-pixel-based ring line width, divided
// by zoom, with a deep-zoom floor so extreme zoom-outs don't vanish
// ring lines entirely (spec.md §4.4).
func RingLineWidth(baseWidthPx, zoom, floorPx float64) float64 {
	if zoom <= 0 {
		return floorPx
	}
	w := baseWidthPx / zoom
	if w < floorPx {
		return floorPx
	}
	return w
}
