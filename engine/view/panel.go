// Package view holds the client-surface interfaces named in spec.md §6
// (info panel, window manager) plus the geometry and easing helpers a
// concrete renderer needs to implement them. engine/persist.LayoutStore
// supplies the one piece of durable state (panel position/open/minimized);
// everything here is render-frame state rebuilt each Update.
package view

import "orbitalmap/engine/persist"

// Rect is an axis-aligned screen-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) falls within r.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Anchor names a viewport corner a panel's default position is pinned to.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

// ComputePanelBounds places a w x h panel at its anchor inside a
// viewportW x viewportH screen, margin pixels from the edge, then clamps
// the result on-screen (mirrors the viewport clamp in
// engine/interaction.PlaceMenu for context menus). A panel larger than
// the viewport is pinned to the top-left corner and overhangs the
// right/bottom edge.
func ComputePanelBounds(anchor Anchor, w, h, margin float64, viewportW, viewportH int) Rect {
	var x, y float64
	switch anchor {
	case AnchorTopLeft:
		x, y = margin, margin
	case AnchorTopRight:
		x, y = float64(viewportW)-w-margin, margin
	case AnchorBottomLeft:
		x, y = margin, float64(viewportH)-h-margin
	case AnchorBottomRight:
		x, y = float64(viewportW)-w-margin, float64(viewportH)-h-margin
	}

	if x+w > float64(viewportW) {
		x = float64(viewportW) - w
	}
	if y+h > float64(viewportH) {
		y = float64(viewportH) - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// InfoPanel is the info-panel DOM surface from spec.md §6
// (infoTitle/infoSubtitle/infoCoords/infoList/realWorldRef/actions)
// reduced to the operations the core map loop drives it with.
type InfoPanel interface {
	SetTitle(title string)
	SetSubtitle(subtitle string)
	SetList(rows []string)
	Clear()
}

// PanelState is the render-frame state behind an ebiten-drawn InfoPanel:
// the text content plus the persisted geometry from a LayoutStore.
type PanelState struct {
	Title    string
	Subtitle string
	Rows     []string
	Layout   persist.PanelLayout
}

// Clear empties the panel's text content without touching its geometry.
func (p *PanelState) Clear() {
	p.Title = ""
	p.Subtitle = ""
	p.Rows = nil
}

// SetTitle implements InfoPanel.
func (p *PanelState) SetTitle(title string) { p.Title = title }

// SetSubtitle implements InfoPanel.
func (p *PanelState) SetSubtitle(subtitle string) { p.Subtitle = subtitle }

// SetList implements InfoPanel.
func (p *PanelState) SetList(rows []string) { p.Rows = rows }
