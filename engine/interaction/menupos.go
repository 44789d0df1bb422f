package interaction

// MenuMargin is the viewport clamp margin for context menus (spec.md
// §4.6: "positions itself within viewport bounds with a 10-px margin").
const MenuMargin = 10.0

// PlaceMenu clamps a menu of size (w, h) anchored at the pointer
// (px, py) so it stays within [margin, viewport-margin] on both axes.
func PlaceMenu(px, py, w, h float64, viewportW, viewportH int) (x, y float64) {
	x, y = px, py

	maxX := float64(viewportW) - MenuMargin - w
	maxY := float64(viewportH) - MenuMargin - h

	if x > maxX {
		x = maxX
	}
	if y > maxY {
		y = maxY
	}
	if x < MenuMargin {
		x = MenuMargin
	}
	if y < MenuMargin {
		y = MenuMargin
	}
	return x, y
}

// DismissReason names what closed an open menu or panel.
type DismissReason int

const (
	DismissNone DismissReason = iota
	DismissEscape
	DismissBlur
	DismissResize
	DismissOutsidePointerDown
)

// MenuState tracks an open context menu and its dismissal.
type MenuState struct {
	Open  bool
	X, Y  float64
	Items []MenuItem
}

// Close closes the menu unconditionally, recording why for callers
// that want to log or animate the dismissal.
func (m *MenuState) Close(reason DismissReason) {
	m.Open = false
	m.Items = nil
}

// HandleOutsidePointerDown closes the menu if (px, py) falls outside
// its last-placed bounds.
func (m *MenuState) HandleOutsidePointerDown(px, py, w, h float64) {
	if !m.Open {
		return
	}
	if px < m.X || px > m.X+w || py < m.Y || py > m.Y+h {
		m.Close(DismissOutsidePointerDown)
	}
}
