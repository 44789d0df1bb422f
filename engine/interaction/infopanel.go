package interaction

// InfoPanelState tracks the single info panel opened by left-clicking
// an orbit ring or location marker (spec.md §4.6).
type InfoPanelState struct {
	Open     bool
	TargetID string
	Kind     TargetKind
}

// HandleLeftClick opens the info panel for orbit/location hits. Both a
// first click and a double-click on an already-open target set Open
// true unconditionally, so a caller driving a minimized DOM panel can
// treat Open as "ensure visible" rather than a toggle.
func (p *InfoPanelState) HandleLeftClick(hit Hit, doubleClick bool) {
	if hit.Kind != TargetOrbitRing && hit.Kind != TargetLocation {
		return
	}
	p.Open = true
	p.TargetID = hit.ID
	p.Kind = hit.Kind
}
