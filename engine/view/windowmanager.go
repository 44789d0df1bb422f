package view

import "orbitalmap/engine/persist"

// PanelID names one of the client-surface panels spec.md §6 lists by DOM
// id (infoTitle/infoSubtitle/infoCoords/infoList live under infoPanel;
// the org-ticker panels are mapOrgBalance/mapOrgIncome/mapOrgResearch/
// mapOrgExpenses).
type PanelID string

const (
	PanelInfo        PanelID = "infoPanel"
	PanelOverview    PanelID = "overviewPanel"
	PanelShipTabs    PanelID = "shipInfoTabsHost"
	PanelZoneJumpBar PanelID = "zoneJumpBar"
	PanelMapOverview PanelID = "mapOverview"
	PanelOrgBalance  PanelID = "mapOrgBalance"
	PanelOrgIncome   PanelID = "mapOrgIncome"
	PanelOrgResearch PanelID = "mapOrgResearch"
	PanelOrgExpenses PanelID = "mapOrgExpenses"
	PanelPlanner     PanelID = "transferPlannerPanel"
)

// defaultAnchors places every known panel somewhere sane on first run,
// before any layout has been persisted.
var defaultAnchors = map[PanelID]struct {
	anchor Anchor
	w, h   float64
}{
	PanelInfo:        {AnchorTopRight, 320, 260},
	PanelOverview:    {AnchorBottomLeft, 260, 160},
	PanelShipTabs:    {AnchorBottomRight, 360, 120},
	PanelZoneJumpBar: {AnchorTopLeft, 420, 36},
	PanelMapOverview: {AnchorTopLeft, 200, 200},
	PanelOrgBalance:  {AnchorTopRight, 180, 28},
	PanelOrgIncome:   {AnchorTopRight, 180, 28},
	PanelOrgResearch: {AnchorTopRight, 180, 28},
	PanelOrgExpenses: {AnchorTopRight, 180, 28},
	PanelPlanner:     {AnchorBottomRight, 300, 220},
}

const panelMargin = 10.0

// WindowManager is the earthmoon:open-hangar-window-style window surface
// from spec.md §6, reduced to the operations the core map loop needs.
type WindowManager interface {
	Open(id PanelID)
	Close(id PanelID)
	Minimize(id PanelID)
	BringToFront(id PanelID)
}

// EbitenWindowManager is the reference desktop build's WindowManager: a
// Z-ordered set of ebiten-drawn panels backed by a persist.LayoutStore,
// grounded on the teacher's single-writer Z-order panel list.
type EbitenWindowManager struct {
	store  persist.LayoutStore
	panels map[PanelID]*PanelState
	order  []PanelID // back to front; last element draws on top
}

// NewEbitenWindowManager loads persisted geometry for every known panel,
// falling back to its default anchor placement when the store has
// nothing saved for it yet (spec.md §6: "Malformed reads fall back to
// empty").
func NewEbitenWindowManager(store persist.LayoutStore, viewportW, viewportH int) (*EbitenWindowManager, error) {
	saved, err := store.Load()
	if err != nil {
		return nil, err
	}

	m := &EbitenWindowManager{
		store:  store,
		panels: make(map[PanelID]*PanelState, len(defaultAnchors)),
	}

	for id, def := range defaultAnchors {
		if layout, ok := saved[string(id)]; ok {
			m.panels[id] = &PanelState{Layout: layout}
		} else {
			bounds := ComputePanelBounds(def.anchor, def.w, def.h, panelMargin, viewportW, viewportH)
			m.panels[id] = &PanelState{Layout: persist.PanelLayout{
				Left: bounds.X, Top: bounds.Y, Width: bounds.W, Height: bounds.H,
			}}
		}
		m.order = append(m.order, id)
	}
	return m, nil
}

// Panel returns the named panel's render state, or nil if id is unknown.
func (m *EbitenWindowManager) Panel(id PanelID) *PanelState {
	return m.panels[id]
}

// Order returns the current back-to-front draw order.
func (m *EbitenWindowManager) Order() []PanelID {
	return m.order
}

// Open implements WindowManager: marks the panel visible and raises it.
func (m *EbitenWindowManager) Open(id PanelID) {
	p, ok := m.panels[id]
	if !ok {
		return
	}
	p.Layout.Open = true
	p.Layout.Minimized = false
	m.BringToFront(id)
	m.persist()
}

// Close implements WindowManager: hides the panel and clears its content.
func (m *EbitenWindowManager) Close(id PanelID) {
	p, ok := m.panels[id]
	if !ok {
		return
	}
	p.Layout.Open = false
	p.Clear()
	m.persist()
}

// Minimize implements WindowManager: collapses the panel without losing
// its content, leaving Layout.Open true.
func (m *EbitenWindowManager) Minimize(id PanelID) {
	p, ok := m.panels[id]
	if !ok {
		return
	}
	p.Layout.Minimized = true
	m.persist()
}

// BringToFront implements WindowManager: moves id to the end of the
// draw order so it paints above every other panel.
func (m *EbitenWindowManager) BringToFront(id PanelID) {
	if _, ok := m.panels[id]; !ok {
		return
	}
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.order = append(m.order, id)
}

// persist writes the current geometry of every panel back to the store.
// Errors are swallowed: a failed layout save should never block the map
// render loop, matching engine/sync's "log and keep the last-good state"
// error policy.
func (m *EbitenWindowManager) persist() {
	out := make(map[string]persist.PanelLayout, len(m.panels))
	for id, p := range m.panels {
		out[string(id)] = p.Layout
	}
	_ = m.store.Save(out)
}
