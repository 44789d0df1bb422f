package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"orbitalmap/engine/anchors"
	"orbitalmap/engine/apiclient"
	"orbitalmap/engine/camera"
	"orbitalmap/engine/config"
	"orbitalmap/engine/curves"
	"orbitalmap/engine/depth"
	"orbitalmap/engine/display"
	"orbitalmap/engine/input"
	"orbitalmap/engine/interaction"
	"orbitalmap/engine/lod"
	"orbitalmap/engine/model"
	"orbitalmap/engine/persist"
	"orbitalmap/engine/planner"
	"orbitalmap/engine/projection"
	"orbitalmap/engine/render"
	"orbitalmap/engine/scene"
	enginesync "orbitalmap/engine/sync"
	"orbitalmap/engine/view"
)

// dustParticleCount is the dust field's initial pool size, within
// camera's [dustMinCount, dustMaxCount] clamp (spec.md §4.5).
const dustParticleCount = 28

// Game is the ebiten.Game implementation wiring every engine package
// into one render/update loop, grounded on the teacher's single
// ebiten.Game entry point in cmd/voyage.
type Game struct {
	cfg    config.Config
	client *apiclient.Client
	loop   *enginesync.Loop

	cam      *camera.Camera
	parallax *camera.ParallaxCamera
	dust     *camera.DustField
	graph    *scene.Graph
	display  *display.Manager
	anchors  *anchors.Cache

	windows *view.EbitenWindowManager
	infoSel string
	menu    interaction.MenuState
	menuHit interaction.Hit

	selectedShipID       string
	selectedShipDocked   bool
	selectedShipHasRobot bool

	planner       *planner.Planner
	plannerBusy   bool
	plannerEvents chan plannerResult

	mu       sync.Mutex
	locs     []model.Location
	ships    []model.Ship
	ringCtrs map[string]string
	names    map[string]string

	locsVersion     int
	seenLocsVersion int
	ancestorBody    map[string]string
	semiMajorOf     map[string]float64
	bodyPositions   map[string]model.Point
	lastTarget      map[string]model.Point
	lerps           map[string]*enginesync.CelestialLerp
	rings           []model.OrbitRingInfo

	transitPositions map[string]model.Point
	transitCurves    map[string]curves.Curve

	tier lod.Tier

	lastCursorX, lastCursorY float64
	dragging                 bool
}

// plannerEventKind names what an async planner goroutine reported back.
type plannerEventKind int

const (
	plannerQuoteReady plannerEventKind = iota
	plannerPorkchopReady
	plannerTransferDone
	plannerFailed
)

// plannerResult is one async server response feeding the planner state
// machine, drained on the Update goroutine so Planner.Apply only ever
// runs on the single render-loop writer (spec.md §5).
type plannerResult struct {
	kind   plannerEventKind
	fromID string
	toID   string
	quote  planner.Quote
	grid   *planner.Porkchop
	errMsg string
}

// NewGame builds a Game against cfg, loading persisted panel geometry
// from layoutPath (or persist.DefaultLayoutPath if empty) and persisted
// window settings from displayConfigPath.
func NewGame(cfg config.Config, layoutPath, displayConfigPath string) (*Game, error) {
	client := apiclient.New(cfg.ServerBaseURL)

	var store persist.LayoutStore
	if layoutPath != "" {
		store = persist.NewFileStore(layoutPath)
	} else {
		store = persist.NewDefaultFileStore()
	}

	windows, err := view.NewEbitenWindowManager(store, display.InternalWidth, display.InternalHeight)
	if err != nil {
		return nil, fmt.Errorf("mapclient: window manager: %w", err)
	}

	fetch := func(ctx context.Context, t float64) ([]model.Location, error) {
		return client.Locations(ctx, true, &t)
	}

	g := &Game{
		cfg:           cfg,
		client:        client,
		cam:           camera.New(),
		parallax:      camera.NewParallaxCamera(display.InternalWidth, display.InternalHeight),
		dust:          camera.NewDustField(display.InternalWidth, display.InternalHeight, dustParticleCount),
		graph:         scene.NewGraph(),
		windows:       windows,
		display:       display.NewManager(displayConfigPath),
		anchors:       anchors.New(fetch),
		lastTarget:    make(map[string]model.Point),
		lerps:         make(map[string]*enginesync.CelestialLerp),
		ancestorBody:  make(map[string]string),
		semiMajorOf:   make(map[string]float64),
		bodyPositions: make(map[string]model.Point),
		plannerEvents: make(chan plannerResult, 4),
	}

	tree, err := client.LocationsTree(context.Background())
	if err != nil {
		return nil, fmt.Errorf("mapclient: initial locations fetch: %w", err)
	}
	g.ringCtrs = ringCenters(tree)

	return g, nil
}

// layerForKind assigns a scene node its draw layer (spec.md §4.4's
// body/location/ship layering, reduced here to orbit ring vs. body vs.
// leaf location since ships are layered separately by the docking
// assignment).
func layerForKind(l model.Location) depth.Layer {
	switch l.Kind {
	case model.KindOrbitRing, model.KindOrbitNode:
		return depth.LayerOrbitRings
	case model.KindZoneRoot, model.KindPlanet, model.KindMoon, model.KindAsteroid:
		return depth.LayerPlanets
	default:
		return depth.LayerLocations
	}
}

func ringCenters(locs []model.Location) map[string]string {
	out := make(map[string]string)
	for _, l := range locs {
		if l.Kind == model.KindOrbitRing && l.RingCenter != "" {
			out[l.ID] = l.RingCenter
		}
	}
	return out
}

// StartSync launches the background sync loop driving locations/state/org
// polling at the cadences in spec.md §4.7, with the transit anchor cache
// primed from every ship's leg buckets on each state tick.
func (g *Game) StartSync(ctx context.Context) error {
	g.loop = enginesync.NewLoop(g.client, g.ringCtrs, g.anchors)
	g.loop.OnLocations = func(locs []model.Location) {
		g.mu.Lock()
		g.locs = locs
		g.locsVersion++
		g.mu.Unlock()
	}
	g.loop.OnState = func(resp apiclient.StateResponse) {
		g.mu.Lock()
		g.ships = resp.Ships
		g.mu.Unlock()
	}
	return g.loop.Start(ctx)
}

// StopSync halts the background sync loop.
func (g *Game) StopSync() {
	if g.loop != nil {
		g.loop.Stop()
	}
}

const dt = 1.0 / 60.0

// Update advances the camera, reconciles the scene graph against the
// latest sync snapshot, advances celestial interpolation and transit
// curves, and resolves pointer/key input into interactions.
func (g *Game) Update() error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("mapclient: recovered panic in Update: %v", r)
		}
	}()
	g.display.HandleInput()
	g.cam.Update(dt)

	g.parallax.SetPosition(g.cam.State.X, g.cam.State.Y)
	g.parallax.SetZoom(g.cam.State.Zoom)
	g.parallax.Resize(display.InternalWidth, display.InternalHeight)
	mx, my := g.cam.Motion()
	g.dust.Update(dt, mx, my, g.cam.Energy(), display.InternalWidth, display.InternalHeight)

	g.mu.Lock()
	locs := g.locs
	ships := g.ships
	version := g.locsVersion
	g.mu.Unlock()

	if locs != nil {
		g.applyLocations(locs, version)
	}
	g.advanceCelestialLerps(dt)

	// nominalWorldSpan times the zoom scale estimates the screen footprint of an average
	// location cluster at the current zoom, driving the global label
	// tier the same way an object's apparent size would in 3D.
	const nominalWorldSpan = 40.0
	transform := camera.FromState(g.cam.State, display.InternalWidth, display.InternalHeight)
	g.tier = lod.NextTier(nominalWorldSpan*transform.Scale, g.tier, g.cfg.LOD)

	g.computeTransitShips(ships)
	g.drainPlannerEvents()
	g.handlePointer(ships)
	g.maybeConfirmPlanner()
	g.maybeCancelPlanner()
	return nil
}

// applyLocations reconciles the scene graph against a fresh projected
// snapshot and, on a genuinely new poll (not just a repeat of the same
// cached slice across frames), installs a celestial lerp for every
// location whose projected position moved (spec.md §4.7).
func (g *Game) applyLocations(locs []model.Location, version int) {
	projected := projection.Project(locs)
	g.graph.Reconcile(projected, layerForKind)

	byID := make(map[string]model.Location, len(projected))
	names := make(map[string]string, len(projected))
	for _, l := range projected {
		byID[l.ID] = l
		names[l.ID] = l.Name
	}
	g.names = names
	g.rings = model.BuildOrbitRings(projected)

	if version == g.seenLocsVersion {
		return
	}
	g.seenLocsVersion = version

	idx := model.NewIndex(locs)
	ancestorBody := make(map[string]string, len(projected))
	semiMajorOf := make(map[string]float64, len(projected))
	for _, l := range projected {
		body := idx.AncestorBody(l.ID)
		ancestorBody[l.ID] = body
		if center, ok := byID[body]; ok {
			semiMajorOf[l.ID] = math.Hypot(l.RX-center.RX, l.RY-center.RY)
		}
	}
	g.ancestorBody = ancestorBody
	g.semiMajorOf = semiMajorOf

	for _, l := range projected {
		target := model.Point{X: l.RX, Y: l.RY}
		if prev, had := g.lastTarget[l.ID]; had && (prev.X != target.X || prev.Y != target.Y) {
			fromX, fromY := target.X, target.Y
			if n := g.graph.Get(l.ID); n != nil {
				fromX, fromY = n.X, n.Y
			}
			lerp := enginesync.Install(fromX, fromY, target.X, target.Y)
			g.lerps[l.ID] = &lerp
		}
		g.lastTarget[l.ID] = target
	}
	for id := range g.lastTarget {
		if _, ok := byID[id]; !ok {
			delete(g.lastTarget, id)
			delete(g.lerps, id)
		}
	}
}

// advanceCelestialLerps steps every active extrapolation, feeds the
// result into the scene graph, and keeps orbit-ring centers aligned
// with their (possibly still-interpolating) center body (spec.md §4.7).
func (g *Game) advanceCelestialLerps(dtS float64) {
	positions := make(map[string]model.Point, len(g.lastTarget))
	for id, target := range g.lastTarget {
		pos := target
		if lerp, ok := g.lerps[id]; ok {
			rx, ry := enginesync.Advance(lerp, dtS)
			pos = model.Point{X: rx, Y: ry}
		}
		positions[id] = pos
		g.graph.UpdatePosition(id, pos.X, pos.Y)
	}
	g.bodyPositions = positions
	g.rings = enginesync.SyncRingCenters(g.rings, positions)
}

// nowGameSeconds returns the sync loop's current estimated game time,
// or 0 before the first state sync lands.
func (g *Game) nowGameSeconds() float64 {
	if g.loop == nil {
		return 0
	}
	return g.loop.Clock().Estimate()
}

// positionAt resolves a location's world position at gameTimeSeconds:
// the anchor cache for a bucketed future/past time, falling back to
// the live (possibly interpolating) scene snapshot for "now".
func (g *Game) positionAt(locationID string, gameTimeSeconds float64) model.Point {
	if g.anchors != nil {
		if pt, ok := g.anchors.Get(locationID, gameTimeSeconds); ok {
			return pt
		}
	}
	if pt, ok := g.bodyPositions[locationID]; ok {
		return pt
	}
	if n := g.graph.Get(locationID); n != nil {
		return model.Point{X: n.X, Y: n.Y}
	}
	return model.Point{}
}

// resolveEndpoint implements curves.EndpointResolver against the live
// anchor cache and scene snapshot (spec.md §4.2/§4.3).
func (g *Game) resolveEndpoint(locationID string, gameTimeSeconds float64) curves.Endpoint {
	return curves.Endpoint{
		Position:  g.positionAt(locationID, gameTimeSeconds),
		Center:    g.bodyPositions[g.ancestorBody[locationID]],
		SemiMajor: g.semiMajorOf[locationID],
	}
}

// computeTransitShips builds each in-transit ship's curve and current
// world position once per frame, shared by hit-testing and Draw.
func (g *Game) computeTransitShips(ships []model.Ship) {
	sun := g.bodyPositions["grp_sun"]
	positions := make(map[string]model.Point, len(ships))
	byShip := make(map[string]curves.Curve, len(ships))
	now := g.nowGameSeconds()
	for _, s := range ships {
		if s.Status != model.StatusTransit {
			continue
		}
		c := curves.BuildShipCurve(s, sun, g.resolveEndpoint)
		t := curves.ShipProgress(s, now)
		positions[s.ID] = c.Point(t)
		byShip[s.ID] = c
	}
	g.transitPositions = positions
	g.transitCurves = byShip
}

// beltRadii returns the inner/outer heliocentric radius of every
// KindAsteroid location currently in the scene graph, ok=false if none.
func (g *Game) beltRadii() (inner, outer float64, ok bool) {
	inner = math.Inf(1)
	for _, id := range g.graph.IDs() {
		n := g.graph.Get(id)
		if n == nil || n.Kind != model.KindAsteroid {
			continue
		}
		r := math.Hypot(n.X, n.Y)
		if r < inner {
			inner = r
		}
		if r > outer {
			outer = r
		}
		ok = true
	}
	return inner, outer, ok
}

func (g *Game) handlePointer(ships []model.Ship) {
	fx, fy := input.GetMousePositionFloat()

	if g.menu.Open && (input.IsMouseJustPressed() || input.IsRightMouseJustPressed()) {
		g.menu.HandleOutsidePointerDown(fx, fy, 160, float64(20*len(g.menu.Items)))
	}

	if input.IsRightMouseJustPressed() {
		g.openContextMenu(fx, fy, ships)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			transform := camera.FromState(g.cam.State, display.InternalWidth, display.InternalHeight)
			dx := (fx - g.lastCursorX) / transform.Scale
			dy := (fy - g.lastCursorY) / transform.Scale
			g.cam.Pan(dx, dy)
		}
		g.dragging = true
	} else {
		if g.dragging {
			if g.menu.Open {
				g.dispatchMenuClick(fx, fy, ships)
			} else {
				g.resolveClick(fx, fy, ships)
			}
		}
		g.dragging = false
	}
	g.lastCursorX, g.lastCursorY = fx, fy
}

// candidateSet builds the full hit-test candidate list for the current
// frame: docked ships and chips, in-transit ships, orbit rings, and
// every scene-graph location plus its body-group fallback candidate
// (spec.md §4.6's priority-ordered Ship/DockedChip/OrbitRing/Location/
// BodyGroup hit-test chain).
func (g *Game) candidateSet(ships []model.Ship) []interaction.Candidate {
	var out []interaction.Candidate

	for locID, docked := range scene.DockedAt(ships) {
		n := g.graph.Get(locID)
		if n == nil {
			continue
		}
		assignment := scene.AssignDocking(n.Kind, docked)
		if assignment.ChipCount > 0 {
			out = append(out, interaction.Candidate{
				ID: locID, Kind: interaction.TargetDockedChip, X: n.X, Y: n.Y, Visible: true,
			})
			continue
		}
		for _, s := range docked {
			if _, ok := assignment.Slots[s.ID]; !ok {
				continue
			}
			out = append(out, interaction.Candidate{ID: s.ID, Kind: interaction.TargetShip, X: n.X, Y: n.Y, Visible: true})
		}
	}

	for id, pos := range g.transitPositions {
		out = append(out, interaction.Candidate{ID: id, Kind: interaction.TargetShip, X: pos.X, Y: pos.Y, Visible: true})
	}

	for _, r := range g.rings {
		out = append(out, interaction.Candidate{
			ID: r.ID, Kind: interaction.TargetOrbitRing, X: r.CenterX, Y: r.CenterY, Radius: r.Radius, Visible: true,
		})
	}

	for _, id := range g.graph.IDs() {
		n := g.graph.Get(id)
		if n == nil {
			continue
		}
		out = append(out, interaction.Candidate{ID: id, Kind: interaction.TargetLocation, X: n.X, Y: n.Y, Visible: true})
		switch n.Kind {
		case model.KindZoneRoot, model.KindPlanet, model.KindMoon, model.KindAsteroid:
			out = append(out, interaction.Candidate{ID: id, Kind: interaction.TargetBodyGroup, X: n.X, Y: n.Y, Visible: true})
		}
	}

	return out
}

func (g *Game) openContextMenu(sx, sy float64, ships []model.Ship) {
	transform := camera.FromState(g.cam.State, display.InternalWidth, display.InternalHeight)
	worldX, worldY := transform.ScreenToWorld(sx, sy)
	hit := interaction.Resolve(g.candidateSet(ships), worldX, worldY, transform.Scale)

	var dockedShipIDs []string
	if hit.Kind == interaction.TargetDockedChip {
		for _, s := range scene.DockedAt(ships)[hit.ID] {
			dockedShipIDs = append(dockedShipIDs, s.ID)
		}
	}

	sel := interaction.SelectionContext{
		SelectedShipID:       g.selectedShipID,
		SelectedShipDocked:   g.selectedShipDocked,
		SelectedShipHasRobot: g.selectedShipHasRobot,
	}
	items := interaction.BuildMenu(hit, dockedShipIDs, sel)
	if len(items) == 0 {
		return
	}
	x, y := interaction.PlaceMenu(sx, sy, 160, float64(20*len(items)), display.InternalWidth, display.InternalHeight)
	g.menu = interaction.MenuState{Open: true, X: x, Y: y, Items: items}
	g.menuHit = hit
}

// dispatchMenuClick resolves a left-click landing inside the open
// context menu to the row it fell on and applies that row's action.
func (g *Game) dispatchMenuClick(px, py float64, ships []model.Ship) {
	const rowHeight = 20.0
	row := int((py - g.menu.Y) / rowHeight)
	if row >= 0 && row < len(g.menu.Items) {
		item := g.menu.Items[row]
		if !item.Disabled {
			g.applyMenuAction(item, ships)
		}
	}
	g.menu.Close(interaction.DismissNone)
}

func (g *Game) applyMenuAction(item interaction.MenuItem, ships []model.Ship) {
	switch item.Kind {
	case interaction.ActionSelect:
		shipID := item.ShipID
		if shipID == "" {
			shipID = g.menuHit.ID
		}
		g.selectShip(shipID, ships)

	case interaction.ActionViewDetails:
		g.infoSel = g.menuHit.ID
		panel := g.windows.Panel(view.PanelInfo)
		panel.SetTitle(g.menuHit.ID)
		if name, ok := g.names[g.menuHit.ID]; ok {
			panel.SetSubtitle(name)
		}
		g.windows.Open(view.PanelInfo)

	case interaction.ActionOpenHangar:
		g.windows.Open(view.PanelShipTabs)

	case interaction.ActionPlanTransfer:
		g.openPlanner(ships)

	case interaction.ActionMoveHere:
		g.beginTransfer(g.menuHit.ID)
	}
}

func (g *Game) resolveClick(sx, sy float64, ships []model.Ship) {
	transform := camera.FromState(g.cam.State, display.InternalWidth, display.InternalHeight)
	worldX, worldY := transform.ScreenToWorld(sx, sy)

	hit := interaction.Resolve(g.candidateSet(ships), worldX, worldY, transform.Scale)
	if hit.ID == "" {
		return
	}

	if hit.Kind == interaction.TargetShip {
		g.selectShip(hit.ID, ships)
		return
	}

	g.infoSel = hit.ID
	g.selectedShipID = ""
	panel := g.windows.Panel(view.PanelInfo)
	panel.SetTitle(hit.ID)
	if name, ok := g.names[hit.ID]; ok {
		panel.SetSubtitle(name)
	}
	g.windows.Open(view.PanelInfo)
}

func (g *Game) selectShip(shipID string, ships []model.Ship) {
	g.infoSel = shipID
	g.selectedShipID = shipID
	g.selectedShipDocked = false
	g.selectedShipHasRobot = false
	for _, s := range ships {
		if s.ID != shipID {
			continue
		}
		g.selectedShipDocked = s.Status == model.StatusDocked
		for _, part := range s.Parts {
			if part == "robonaut" {
				g.selectedShipHasRobot = true
			}
		}
		break
	}
	panel := g.windows.Panel(view.PanelInfo)
	panel.SetTitle(shipID)
	panel.SetSubtitle("ship")
	g.windows.Open(view.PanelInfo)
}

// openPlanner starts a transfer planner for the currently selected ship
// with no destination chosen yet (spec.md §4.8's "Plan transfer" action).
func (g *Game) openPlanner(ships []model.Ship) {
	if g.selectedShipID == "" {
		return
	}
	for _, s := range ships {
		if s.ID != g.selectedShipID {
			continue
		}
		g.planner = planner.New(s, "")
		g.windows.Open(view.PanelPlanner)
		g.refreshPlannerPanel()
		return
	}
}

// beginTransfer starts (or redirects) a planner straight at toLocationID,
// the "Move here…" menu action on a selected docked ship.
func (g *Game) beginTransfer(toLocationID string) {
	if g.selectedShipID == "" || g.plannerBusy {
		return
	}
	g.mu.Lock()
	var ship model.Ship
	for _, s := range g.ships {
		if s.ID == g.selectedShipID {
			ship = s
			break
		}
	}
	g.mu.Unlock()
	if ship.ID == "" {
		return
	}
	g.planner = planner.New(ship, toLocationID)
	g.windows.Open(view.PanelPlanner)
	g.refreshPlannerPanel()
	g.fetchQuote(ship.LocationID, toLocationID)
}

const plannerRequestTimeout = 10 * time.Second

// fetchQuote asynchronously requests a transfer quote, delivering the
// result back onto plannerEvents for the Update goroutine to apply.
func (g *Game) fetchQuote(fromID, toID string) {
	if g.plannerBusy {
		return
	}
	g.plannerBusy = true
	now := g.nowGameSeconds()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), plannerRequestTimeout)
		defer cancel()
		q, err := g.client.TransferQuoteAdvanced(ctx, fromID, toID, now, 0)
		if err != nil {
			g.plannerEvents <- plannerResult{kind: plannerFailed, errMsg: err.Error()}
			return
		}
		g.plannerEvents <- plannerResult{
			kind: plannerQuoteReady, fromID: fromID, toID: toID,
			quote: planner.Quote{
				Path: q.Path, LambertDeltaV: q.LambertDeltaV, PhaseDeltaV: q.PhaseDeltaV,
				TofS: q.TofS, PhaseAngleRad: q.PhaseAngleRad,
				SynodicPeriodS: q.SynodicPeriodS, NextWindowS: q.NextWindowS,
			},
		}
	}()
}

// fetchPorkchop asynchronously requests the departure/TOF Δv grid once
// a quote is in hand (spec.md §4.8).
func (g *Game) fetchPorkchop(fromID, toID string) {
	g.plannerBusy = true
	now := g.nowGameSeconds()
	const gridSize = 50
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), plannerRequestTimeout)
		defer cancel()
		grid, err := g.client.Porkchop(ctx, fromID, toID, now, gridSize)
		if err != nil {
			g.plannerEvents <- plannerResult{kind: plannerFailed, errMsg: err.Error()}
			return
		}
		g.plannerEvents <- plannerResult{
			kind: plannerPorkchopReady,
			grid: &planner.Porkchop{DepartureTimes: grid.DepartureTimes, Tofs: grid.Tofs, DeltaV: grid.DeltaV},
		}
	}()
}

// submitTransfer asynchronously posts the confirmed transfer.
func (g *Game) submitTransfer() {
	shipID, toID := g.planner.ShipID, g.planner.ToID
	g.plannerBusy = true
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), plannerRequestTimeout)
		defer cancel()
		if err := g.client.Transfer(ctx, shipID, toID); err != nil {
			g.plannerEvents <- plannerResult{kind: plannerFailed, errMsg: err.Error()}
			return
		}
		g.plannerEvents <- plannerResult{kind: plannerTransferDone}
	}()
}

// drainPlannerEvents applies every async planner response queued since
// the last frame, keeping Planner.Apply on the single render-loop writer.
func (g *Game) drainPlannerEvents() {
	for {
		select {
		case ev := <-g.plannerEvents:
			g.applyPlannerEvent(ev)
		default:
			return
		}
	}
}

func (g *Game) applyPlannerEvent(ev plannerResult) {
	g.plannerBusy = false
	if g.planner == nil {
		return
	}
	switch ev.kind {
	case plannerQuoteReady:
		g.planner.Apply(planner.EventQuoteReturned, ev.quote)
		g.fetchPorkchop(ev.fromID, ev.toID)
	case plannerPorkchopReady:
		g.planner.Apply(planner.EventPorkchopReturned, ev.grid)
	case plannerTransferDone:
		g.planner.Submitted()
	case plannerFailed:
		g.planner.LastError = ev.errMsg
		g.planner.Failed(ev.errMsg)
	}
	g.refreshPlannerPanel()
}

// maybeConfirmPlanner confirms the planner's current selection on
// Enter, once a quote (and ideally a porkchop grid) is in hand.
func (g *Game) maybeConfirmPlanner() {
	if g.planner == nil || !input.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if g.planner.State != planner.StateQuoted && g.planner.State != planner.StatePorkchop {
		return
	}
	g.planner.Apply(planner.EventConfirm, nil)
	g.refreshPlannerPanel()
	g.submitTransfer()
}

// maybeCancelPlanner closes the planner panel on Escape.
func (g *Game) maybeCancelPlanner() {
	if g.planner == nil || !input.IsKeyJustPressed(ebiten.KeyEscape) {
		return
	}
	g.planner.Apply(planner.EventCancel, nil)
	g.windows.Close(view.PanelPlanner)
	g.planner = nil
}

func (g *Game) refreshPlannerPanel() {
	if g.planner == nil {
		return
	}
	p := g.windows.Panel(view.PanelPlanner)
	if p == nil {
		return
	}
	p.SetTitle("Transfer planner")
	p.SetSubtitle(fmt.Sprintf("%s -> %s [%s]", g.planner.FromID, g.planner.ToID, g.planner.State))

	rows := []string{
		fmt.Sprintf("lambert dv: %.1f m/s", g.planner.Quote.LambertDeltaV),
		fmt.Sprintf("phase dv: %.1f m/s", g.planner.Quote.PhaseDeltaV),
		fmt.Sprintf("tof: %.0f s", g.planner.Quote.TofS),
	}
	if g.planner.Grid != nil {
		rows = append(rows, fmt.Sprintf("porkchop grid: %d x %d", len(g.planner.Grid.DepartureTimes), len(g.planner.Grid.Tofs)))
	}
	if g.planner.State == planner.StateQuoted || g.planner.State == planner.StatePorkchop {
		rows = append(rows, "Enter to confirm, Esc to cancel")
	}
	if g.planner.LastError != "" {
		rows = append(rows, "error: "+g.planner.LastError)
	}
	p.SetList(rows)
}

// Layout implements ebiten.Game: the map canvas always renders at the
// display package's fixed internal resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.Layout(outsideWidth, outsideHeight)
}

var bgColor = color.RGBA{8, 10, 18, 255}

const transitPathSamples = 48

// Draw renders the dust field, orbit rings, asteroid belt, scene graph,
// in-transit ships and their curves, labels, and every open panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	transform := camera.FromState(g.cam.State, display.InternalWidth, display.InternalHeight)

	render.DrawDust(screen, g.dust.Particles())

	ringTransform := g.parallax.TransformForLayer(depth.LayerOrbitRings)
	for _, r := range g.rings {
		sx, sy := ringTransform.WorldToScreen(r.CenterX, r.CenterY)
		lineWidthPx := lod.RingLineWidth(2.0, ringTransform.Scale, 0.5) * ringTransform.Scale
		render.DrawOrbitRing(screen, sx, sy, r.Radius*ringTransform.Scale, lineWidthPx)
	}

	if inner, outer, ok := g.beltRadii(); ok && g.tier > lod.TierCulled {
		sun := g.bodyPositions["grp_sun"]
		sx, sy := transform.WorldToScreen(sun.X, sun.Y)
		for _, band := range scene.BeltBands(inner, outer) {
			render.DrawBeltBand(screen, sx, sy, band, transform.Scale)
		}
		if g.tier == lod.TierFull {
			for _, speck := range scene.BeltSpecks(inner, outer) {
				render.DrawBeltSpeck(screen, sx, sy, speck, transform.Scale)
			}
		}
	}

	const baseIconPx = 24.0
	apparent := baseIconPx * lod.IconLocalScale(baseIconPx, baseIconPx, transform.Scale) * transform.Scale

	g.mu.Lock()
	ships := g.ships
	g.mu.Unlock()
	dockedAt := scene.DockedAt(ships)

	var texts []*lod.Text
	if g.tier > lod.TierCulled {
		texts = make([]*lod.Text, 0, g.graph.Len()+len(ships))
	}

	for _, id := range g.graph.IDs() {
		n := g.graph.Get(id)
		if n == nil {
			continue
		}
		px, py := transform.WorldToScreen(n.X, n.Y)
		icon := scene.BodyIcon(model.Location{ID: n.ID, Kind: n.Kind})
		render.DrawBodyIcon(screen, px, py, apparent, icon)
		g.drawDockedShips(screen, n, px, py, dockedAt[id])

		if texts != nil {
			texts = append(texts, &lod.Text{
				ID:       n.ID,
				Priority: lod.PriorityBodyLabel,
				Alpha:    1,
				Parented: true,
				Bounds:   lod.Bounds{X: px + apparent/2 + 2, Y: py - 6, W: 80, H: 12},
			})
		}
	}

	now := g.nowGameSeconds()
	for _, s := range ships {
		if s.Status != model.StatusTransit {
			continue
		}
		curve, ok := g.transitCurves[s.ID]
		if !ok {
			continue
		}
		t := curves.ShipProgress(s, now)

		screenPts := make([]model.Point, transitPathSamples)
		for i := 0; i < transitPathSamples; i++ {
			wp := curve.Point(float64(i) / float64(transitPathSamples-1))
			sx, sy := transform.WorldToScreen(wp.X, wp.Y)
			screenPts[i] = model.Point{X: sx, Y: sy}
		}
		render.DrawTransitPath(screen, screenPts, t)

		pos := g.transitPositions[s.ID]
		px, py := transform.WorldToScreen(pos.X, pos.Y)
		render.DrawShip(screen, px, py, 10, s.ID == g.selectedShipID)

		if texts != nil {
			texts = append(texts, &lod.Text{
				ID:       s.ID,
				Priority: lod.PriorityShipLabel,
				Alpha:    1,
				Parented: true,
				Bounds:   lod.Bounds{X: px + 8, Y: py - 6, W: 80, H: 12},
			})
		}
	}

	if texts != nil {
		labelContents := make(map[string]string, len(g.names)+len(ships))
		for id, name := range g.names {
			labelContents[id] = name
		}
		for _, s := range ships {
			labelContents[s.ID] = s.Name
		}
		lod.CullLabels(texts)
		render.DrawLabels(screen, texts, labelContents, render.DefaultFace)
	}

	for _, id := range g.windows.Order() {
		p := g.windows.Panel(id)
		if p == nil || !p.Layout.Open {
			continue
		}
		render.DrawPanelChrome(screen, p.Layout.Left, p.Layout.Top, p.Layout.Width, p.Layout.Height, p.Title)
		render.DrawPanelRows(screen, p.Layout.Left, p.Layout.Top, p.Subtitle, p.Rows)
	}

	render.DrawContextMenu(screen, &g.menu)

	g.graph.ClearDirty()
}

const dockSlotSpacingPx = 16.0

// drawDockedShips renders ships docked at node n: individually
// slot-positioned at orbit-ring locations, or collapsed into a single
// aggregate chip everywhere else (spec.md §4.4).
func (g *Game) drawDockedShips(screen *ebiten.Image, n *scene.Node, px, py float64, docked []model.Ship) {
	if len(docked) == 0 {
		return
	}
	assignment := scene.AssignDocking(n.Kind, docked)
	if assignment.ChipCount > 0 {
		render.DrawDockedChip(screen, px, py-18, assignment.ChipSize)
		return
	}
	positions := lod.DockSlotPositions(px, py+18, dockSlotSpacingPx, len(docked))
	for _, s := range docked {
		slot, ok := assignment.Slots[s.ID]
		if !ok || slot >= len(positions) {
			continue
		}
		pos := positions[slot]
		render.DrawShip(screen, pos.X, pos.Y, 10, s.ID == g.selectedShipID)
	}
}
