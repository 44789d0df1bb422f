package scene

import "orbitalmap/engine/model"

// Icon names the stylized glyph drawn for a body or leaf location
// (spec.md §4.4).
type Icon int

const (
	IconDiamond Icon = iota
	IconSunburst
	IconCrescentMoon
	IconAsteroidSilhouette
	IconGalileanMoon
	IconLagrangeDiamond
	IconMoonletGlyph
	IconAsteroidGlyph
	IconHitDiscOnly
)

// galileanMoons are rendered with a distinct variant glyph (spec.md
// §4.4: "Galilean-moon variants").
var galileanMoons = map[string]bool{
	"loc_io":       true,
	"loc_europa":   true,
	"loc_ganymede": true,
	"loc_callisto": true,
}

// BodyIcon selects the stylized icon for a body-kind location (Sun,
// planet, or moon). Non-body kinds use LeafIcon instead.
func BodyIcon(loc model.Location) Icon {
	switch loc.Kind {
	case model.KindZoneRoot:
		return IconSunburst
	case model.KindMoon:
		if galileanMoons[loc.ID] {
			return IconGalileanMoon
		}
		return IconCrescentMoon
	case model.KindAsteroid:
		return IconAsteroidSilhouette
	case model.KindPlanet:
		return IconDiamond
	default:
		return IconDiamond
	}
}

// LeafIcon selects the icon (or bare hit-disc) for a non-body leaf
// location. Orbit-ring ids never render here — the ring draws its
// members implicitly (spec.md §4.4).
func LeafIcon(loc model.Location) Icon {
	switch loc.Kind {
	case model.KindLagrange:
		return IconLagrangeDiamond
	case model.KindMoonlet:
		return IconMoonletGlyph
	case model.KindAsteroid:
		return IconAsteroidGlyph
	default:
		return IconHitDiscOnly
	}
}

// SkipsLeafRender reports whether a location's own icon should never be
// drawn because it is (or belongs to) an orbit ring, which renders its
// members implicitly.
func SkipsLeafRender(loc model.Location) bool {
	return loc.Kind == model.KindOrbitRing
}
