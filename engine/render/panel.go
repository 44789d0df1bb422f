package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"orbitalmap/engine/interaction"
)

var (
	panelFill   = color.RGBA{18, 22, 32, 220}
	panelBorder = color.RGBA{70, 90, 120, 255}
	panelTitle  = color.RGBA{230, 230, 235, 255}

	menuFill       = color.RGBA{24, 28, 40, 235}
	menuBorder     = color.RGBA{90, 110, 140, 255}
	menuRow        = color.RGBA{225, 225, 230, 255}
	menuRowDimmed  = color.RGBA{110, 110, 118, 255}
	menuRowHeight  = 20.0
	menuPanelWidth = 160.0
)

// DrawContextMenu draws an open right-click context menu at its placed
// (x, y) position, one row per item, disabled rows dimmed.
func DrawContextMenu(screen *ebiten.Image, m *interaction.MenuState) {
	if m == nil || !m.Open || len(m.Items) == 0 {
		return
	}
	h := menuRowHeight * float64(len(m.Items))
	vector.DrawFilledRect(screen, float32(m.X), float32(m.Y), float32(menuPanelWidth), float32(h), menuFill, true)
	vector.StrokeRect(screen, float32(m.X), float32(m.Y), float32(menuPanelWidth), float32(h), 1, menuBorder, true)

	for i, item := range m.Items {
		col := menuRow
		if item.Disabled {
			col = menuRowDimmed
		}
		rowY := int(m.Y) + i*int(menuRowHeight) + 14
		text.Draw(screen, item.Label, DefaultFace, int(m.X)+8, rowY, col)
	}
}

// DrawPanelChrome draws an open panel's background, border, and title
// bar at its persisted geometry (engine/persist.PanelLayout), the
// ebiten-drawn counterpart to a DOM window the browser build renders.
func DrawPanelChrome(screen *ebiten.Image, x, y, w, h float64, title string) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelFill, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, panelBorder, true)
	if title != "" {
		text.Draw(screen, title, DefaultFace, int(x)+8, int(y)+16, panelTitle)
	}
}

const panelRowHeight = 16

// DrawPanelRows draws a panel's subtitle and content rows (the text an
// engine/view.PanelState accumulates via SetSubtitle/SetList), stacked
// below the chrome's title bar drawn by DrawPanelChrome.
func DrawPanelRows(screen *ebiten.Image, x, y float64, subtitle string, rows []string) {
	lineY := int(y) + 32
	if subtitle != "" {
		text.Draw(screen, subtitle, DefaultFace, int(x)+8, lineY, menuRowDimmed)
		lineY += panelRowHeight
	}
	for _, row := range rows {
		text.Draw(screen, row, DefaultFace, int(x)+8, lineY, menuRow)
		lineY += panelRowHeight
	}
}
