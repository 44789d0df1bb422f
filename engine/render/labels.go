package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"orbitalmap/engine/lod"
)

// DefaultFace is the fallback bitmap face used when no custom font has
// been loaded; it keeps labels legible without pulling in font assets.
var DefaultFace font.Face = basicfont.Face7x13

var labelColor = color.RGBA{230, 230, 235, 255}

// DrawLabels draws every label lod.CullLabels marked Visible at its
// bounds origin, faded by its current alpha. contents supplies the
// display string for each text's ID; an id with no entry is skipped.
func DrawLabels(screen *ebiten.Image, texts []*lod.Text, contents map[string]string, face font.Face) {
	if face == nil {
		face = DefaultFace
	}
	for _, t := range texts {
		if t == nil || !t.Visible || t.Alpha <= 0 {
			continue
		}
		s, ok := contents[t.ID]
		if !ok {
			continue
		}
		col := fadeColor(labelColor, t.Alpha)
		text.Draw(screen, s, face, int(t.Bounds.X), int(t.Bounds.Y), col)
	}
}

func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}
