// Package render draws the orbital map's retained scene graph (spec.md
// §4.4: rings, body/location icons, ships, docked chips, labels) with
// ebiten's vector primitives, grounded on the screen-space
// vector.StrokeLine/StrokeCircle/DrawFilledCircle idiom the teacher uses
// for its own 2D overlay drawing.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"orbitalmap/engine/camera"
	"orbitalmap/engine/model"
	"orbitalmap/engine/scene"
)

// bodyColors maps a scene.Icon to its fill color. Index wraps via
// modulo so an out-of-range Icon still renders something instead of
// panicking on an out-of-bounds slice access.
var bodyColors = []color.RGBA{
	scene.IconDiamond:            {220, 220, 230, 255},
	scene.IconSunburst:           {255, 214, 102, 255},
	scene.IconCrescentMoon:       {200, 200, 210, 255},
	scene.IconAsteroidSilhouette: {140, 120, 100, 255},
	scene.IconGalileanMoon:       {180, 200, 230, 255},
	scene.IconLagrangeDiamond:    {160, 220, 200, 255},
	scene.IconMoonletGlyph:       {170, 170, 180, 255},
	scene.IconAsteroidGlyph:      {150, 130, 110, 255},
	scene.IconHitDiscOnly:        {0, 0, 0, 0},
}

func colorFor(icon scene.Icon) color.RGBA {
	if int(icon) < 0 || int(icon) >= len(bodyColors) {
		return color.RGBA{255, 255, 255, 255}
	}
	return bodyColors[icon]
}

// shipColor and dockedChipColor are fixed accents distinct from any
// body color, so a ship glyph never blends into the body it orbits.
var (
	shipColor       = color.RGBA{120, 200, 255, 255}
	dockedChipColor = color.RGBA{90, 150, 210, 220}
	ringColor       = color.RGBA{90, 110, 140, 160}
)

// DrawOrbitRing strokes a circular orbit ring centered on (cx, cy) at
// radiusPx with lineWidthPx, both already camera-scaled by the caller
// (engine/lod.RingLineWidth supplies the floor-clamped width).
func DrawOrbitRing(screen *ebiten.Image, cx, cy, radiusPx, lineWidthPx float64) {
	if radiusPx <= 0 {
		return
	}
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radiusPx), float32(lineWidthPx), ringColor, true)
}

// DrawBodyIcon renders a body or leaf-location glyph at (x, y) with a
// footprint of sizePx, using a shape keyed by icon so the Sun, planets,
// moons, and asteroids remain visually distinct at a glance.
func DrawBodyIcon(screen *ebiten.Image, x, y, sizePx float64, icon scene.Icon) {
	if icon == scene.IconHitDiscOnly || sizePx <= 0 {
		return
	}
	col := colorFor(icon)
	r := float32(sizePx / 2)
	cx, cy := float32(x), float32(y)

	switch icon {
	case scene.IconSunburst:
		vector.DrawFilledCircle(screen, cx, cy, r, col, true)
		drawSunburstSpokes(screen, cx, cy, r, col)
	case scene.IconLagrangeDiamond, scene.IconDiamond:
		drawDiamond(screen, cx, cy, r, col)
	default:
		vector.DrawFilledCircle(screen, cx, cy, r, col, true)
	}
}

func drawDiamond(screen *ebiten.Image, cx, cy, r float32, col color.RGBA) {
	vector.StrokeLine(screen, cx, cy-r, cx+r, cy, 1, col, true)
	vector.StrokeLine(screen, cx+r, cy, cx, cy+r, 1, col, true)
	vector.StrokeLine(screen, cx, cy+r, cx-r, cy, 1, col, true)
	vector.StrokeLine(screen, cx-r, cy, cx, cy-r, 1, col, true)
}

func drawSunburstSpokes(screen *ebiten.Image, cx, cy, r float32, col color.RGBA) {
	const spokes = 8
	for i := 0; i < spokes; i++ {
		angle := float64(i) / spokes * 2 * 3.141592653589793
		dx := float32(math.Cos(angle)) * r * 1.6
		dy := float32(math.Sin(angle)) * r * 1.6
		vector.StrokeLine(screen, cx, cy, cx+dx, cy+dy, 1, col, true)
	}
}

// DrawShip renders a single ship glyph (a small filled triangle-like
// marker, approximated here as a diamond for a stable silhouette at
// small screen sizes) at (x, y) with a footprint of sizePx.
func DrawShip(screen *ebiten.Image, x, y, sizePx float64, selected bool) {
	col := shipColor
	if selected {
		col = color.RGBA{255, 255, 255, 255}
	}
	r := float32(sizePx / 2)
	drawDiamond(screen, float32(x), float32(y), r, col)
}

// DrawDockedChip renders the aggregate "N ships docked" chip used at
// non-orbit locations (spec.md §4.4), sized by engine/lod.DockedChipSize.
func DrawDockedChip(screen *ebiten.Image, x, y, sizePx float64) {
	r := float32(sizePx / 2)
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, dockedChipColor, true)
}

var beltColor = color.RGBA{150, 130, 110, 255}

// DrawBeltBand strokes one diffuse asteroid-belt band centered on
// (cx, cy) at the band's mean radius, faded by alpha (spec.md §4.4:
// "14 overlapping diffuse bands").
func DrawBeltBand(screen *ebiten.Image, cx, cy float64, band scene.BeltBand, scale float64) {
	radius := (band.InnerRadius + band.OuterRadius) / 2 * scale
	width := (band.OuterRadius - band.InnerRadius) * scale
	if radius <= 0 || width <= 0 {
		return
	}
	col := beltColor
	col.A = uint8(band.Alpha * 255)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), float32(width), col, true)
}

// DrawBeltSpeck draws one deterministic scatter point of the asteroid
// belt (spec.md §4.4: "32 deterministic scatter specks").
func DrawBeltSpeck(screen *ebiten.Image, cx, cy float64, speck scene.Speck, scale float64) {
	r := speck.Radius * scale
	x := cx + r*math.Cos(speck.AngleRad)
	y := cy + r*math.Sin(speck.AngleRad)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(speck.Size), beltColor, true)
}

// DrawDust renders the drifting background dust field, already in
// screen space (spec.md §4.5).
func DrawDust(screen *ebiten.Image, particles []camera.DustParticle) {
	for _, p := range particles {
		col := color.RGBA{200, 210, 230, uint8(p.Alpha * 255)}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 1, col, true)
	}
}

var (
	pathTraveledColor = color.RGBA{90, 100, 120, 160}
	pathRemainingColor = color.RGBA{160, 210, 255, 230}
)

// DrawTransitPath renders a sampled transit curve, split at traveledFrac
// into a dim traveled portion and a bright remaining portion (spec.md
// §4.3's "Path rendering"). points are already in screen space.
func DrawTransitPath(screen *ebiten.Image, points []model.Point, traveledFrac float64) {
	if len(points) < 2 {
		return
	}
	splitIdx := int(traveledFrac * float64(len(points)-1))
	for i := 0; i < len(points)-1; i++ {
		col := pathRemainingColor
		if i < splitIdx {
			col = pathTraveledColor
		}
		a, b := points[i], points[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, col, true)
	}
}
