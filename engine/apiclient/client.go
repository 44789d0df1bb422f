// Package apiclient is a typed REST client for the server endpoints
// described in spec.md §6. Every method returns decoded engine/model
// structs (or a small response type for planner-only shapes) and a
// wrapped error; decoding tolerates missing/partial fields rather than
// failing outright, per spec.md §7's "defensive coercion" policy.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orbitalmap/engine/model"
)

const defaultTimeout = 15 * time.Second

// Client wraps every `/api/*` endpoint consumed by the orbital map.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New returns a client against baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
	}
}

// NewWithHTTPClient is New with an injected http.Client, for tests that
// point at an httptest.Server with a tight timeout.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{httpClient: hc, baseURL: baseURL}
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Detail: extractDetail(data)}
	}

	if result == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("apiclient: decode %s: %w", path, err)
	}
	return nil
}

// StatusError is returned for a non-2xx response; Detail carries the
// server's `detail` string when present, surfaced verbatim to the user
// for confirm-button failures (spec.md §7).
type StatusError struct {
	Path       string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("apiclient: %s: %d %s", e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("apiclient: %s: status %d", e.Path, e.StatusCode)
}

func extractDetail(body []byte) string {
	var shape struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &shape) == nil {
		return shape.Detail
	}
	return ""
}

// rawLocation mirrors the wire shape loosely; missing numeric/string
// fields decode to Go zero values rather than failing the whole batch.
type rawLocation struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Symbol     string  `json:"symbol"`
	ParentID   string  `json:"parent_id"`
	IsGroup    bool    `json:"is_group"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	SortOrder  int     `json:"sort_order"`
	WikiHint   string  `json:"wiki_hint"`
	RingID     string  `json:"ring_id"`
	RingCenter string  `json:"ring_center"`
}

func (r rawLocation) toModel() model.Location {
	return model.Location{
		ID: r.ID, Name: r.Name, Symbol: r.Symbol, ParentID: r.ParentID,
		IsGroup: r.IsGroup, X: r.X, Y: r.Y,
		SortOrder: r.SortOrder, WikiHint: r.WikiHint,
		RingID: r.RingID, RingCenter: r.RingCenter,
	}
}

// Locations fetches the location tree, optionally at a future game
// time (spec.md §6: "GET /api/locations?dynamic=1[&t=<gameSec>]").
func (c *Client) Locations(ctx context.Context, dynamic bool, t *float64) ([]model.Location, error) {
	path := "/api/locations"
	if dynamic {
		path += "?dynamic=1"
		if t != nil {
			path += fmt.Sprintf("&t=%g", *t)
		}
	}
	var raw []rawLocation
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]model.Location, len(raw))
	for i, r := range raw {
		out[i] = r.toModel()
	}
	return out, nil
}

// LocationsTree fetches the nested tree used by the planner destination
// picker (spec.md §6: "GET /api/locations/tree").
func (c *Client) LocationsTree(ctx context.Context) ([]model.Location, error) {
	var raw []rawLocation
	if err := c.do(ctx, http.MethodGet, "/api/locations/tree", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]model.Location, len(raw))
	for i, r := range raw {
		out[i] = r.toModel()
	}
	return out, nil
}

type rawTransferLeg struct {
	FromID           string  `json:"from_id"`
	ToID             string  `json:"to_id"`
	DepartureTime    float64 `json:"departure_time"`
	ArrivalTime      float64 `json:"arrival_time"`
	TofS             float64 `json:"tof_s"`
	IsInterplanetary bool    `json:"is_interplanetary"`
}

func (r rawTransferLeg) toModel() model.TransferLeg {
	return model.TransferLeg{
		FromID: r.FromID, ToID: r.ToID,
		DepartureTime: r.DepartureTime, ArrivalTime: r.ArrivalTime,
		TofS: r.TofS, IsInterplanetary: r.IsInterplanetary,
	}
}

type rawCargoItem struct {
	ContainerIndex int     `json:"container_index"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
}

// rawShip mirrors the wire shape of one ship entry; every field is
// optional on the wire and zero-values when absent.
type rawShip struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	ColorHex       string           `json:"color_hex"`
	Size           float64          `json:"size"`
	Status         string           `json:"status"` // "docked" | "transit"
	LocationID     string           `json:"location_id"`
	FromLocationID string           `json:"from_location_id"`
	ToLocationID   string           `json:"to_location_id"`
	DepartedAt     float64          `json:"departed_at"`
	ArrivesAt      float64          `json:"arrives_at"`
	TransferLegs   []rawTransferLeg `json:"transfer_legs"`
	DryMass        float64          `json:"dry_mass"`
	FuelMass       float64          `json:"fuel_mass"`
	ISP            float64          `json:"isp"`
	Thrust         float64          `json:"thrust"`
	DeltaVRemain   float64          `json:"delta_v_remaining"`
	PowerBalance   *float64         `json:"power_balance"`
	ThermalBalance *float64         `json:"thermal_balance"`
	Parts          []string         `json:"parts"`
	Cargo          []rawCargoItem   `json:"cargo"`
	DockSlot       *int             `json:"dock_slot"`
}

func (r rawShip) toModel() model.Ship {
	status := model.StatusDocked
	if r.Status == "transit" {
		status = model.StatusTransit
	}
	legs := make([]model.TransferLeg, len(r.TransferLegs))
	for i, l := range r.TransferLegs {
		legs[i] = l.toModel()
	}
	cargo := make([]model.CargoItem, len(r.Cargo))
	for i, c := range r.Cargo {
		cargo[i] = model.CargoItem{ContainerIndex: c.ContainerIndex, Name: c.Name, Quantity: c.Quantity}
	}
	return model.Ship{
		ID: r.ID, Name: r.Name, ColorHex: r.ColorHex, Size: r.Size, Status: status,
		LocationID: r.LocationID, FromLocationID: r.FromLocationID, ToLocationID: r.ToLocationID,
		DepartedAt: r.DepartedAt, ArrivesAt: r.ArrivesAt, TransferLegs: legs,
		DryMass: r.DryMass, FuelMass: r.FuelMass, ISP: r.ISP, Thrust: r.Thrust,
		DeltaVRemaining: r.DeltaVRemain, PowerBalance: r.PowerBalance, ThermalBalance: r.ThermalBalance,
		Parts: r.Parts, Cargo: cargo, DockSlot: r.DockSlot,
	}
}

type rawState struct {
	ServerTime float64   `json:"server_time"`
	TimeScale  float64   `json:"time_scale"`
	Ships      []rawShip `json:"ships"`
}

// StateResponse is the decoded shape of GET /api/state.
type StateResponse struct {
	ServerTime float64
	TimeScale  float64
	Ships      []model.Ship
}

// State fetches server time, time scale, and every ship (spec.md §6:
// "GET /api/state | {server_time, time_scale, ships[]}").
func (c *Client) State(ctx context.Context) (StateResponse, error) {
	var raw rawState
	if err := c.do(ctx, http.MethodGet, "/api/state", nil, &raw); err != nil {
		return StateResponse{}, err
	}
	ships := make([]model.Ship, len(raw.Ships))
	for i, s := range raw.Ships {
		ships[i] = s.toModel()
	}
	return StateResponse{ServerTime: raw.ServerTime, TimeScale: raw.TimeScale, Ships: ships}, nil
}

// OrgSummary is the decoded shape of GET /api/org.
type OrgSummary struct {
	Balance  float64 `json:"balance"`
	Income   float64 `json:"income"`
	Research float64 `json:"research"`
	Expenses float64 `json:"expenses"`
}

// Org fetches the top-bar financial summary (spec.md §6: "GET /api/org").
func (c *Client) Org(ctx context.Context) (OrgSummary, error) {
	var resp OrgSummary
	err := c.do(ctx, http.MethodGet, "/api/org", nil, &resp)
	return resp, err
}

// InventoryItem is one resource or part entry at a location.
type InventoryItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// InventoryAt fetches resources/parts at a location (spec.md §6:
// "GET /api/inventory/location/:id").
func (c *Client) InventoryAt(ctx context.Context, locationID string) ([]InventoryItem, error) {
	var items []InventoryItem
	err := c.do(ctx, http.MethodGet, "/api/inventory/location/"+locationID, nil, &items)
	return items, err
}

// Transfer begins a transfer (spec.md §6: "POST /api/ships/:id/transfer
// {to_location_id}").
func (c *Client) Transfer(ctx context.Context, shipID, toLocationID string) error {
	body := struct {
		ToLocationID string `json:"to_location_id"`
	}{toLocationID}
	return c.do(ctx, http.MethodPost, "/api/ships/"+shipID+"/transfer", body, nil)
}

// InventoryAction is jettison or deploy (spec.md §6:
// "POST /api/ships/:id/inventory/{jettison|deploy} {container_index}").
func (c *Client) InventoryAction(ctx context.Context, shipID, action string, containerIndex int) error {
	body := struct {
		ContainerIndex int `json:"container_index"`
	}{containerIndex}
	return c.do(ctx, http.MethodPost, "/api/ships/"+shipID+"/inventory/"+action, body, nil)
}

// Deconstruct removes a docked ship (spec.md §6:
// "POST /api/ships/:id/deconstruct {keep_ship_record}").
func (c *Client) Deconstruct(ctx context.Context, shipID string, keepShipRecord bool) error {
	body := struct {
		KeepShipRecord bool `json:"keep_ship_record"`
	}{keepShipRecord}
	return c.do(ctx, http.MethodPost, "/api/ships/"+shipID+"/deconstruct", body, nil)
}

// TransferQuote is the decoded response of transfer_quote_advanced.
type TransferQuote struct {
	Path            []string `json:"path"`
	LambertDeltaV   float64  `json:"lambert_delta_v"`
	PhaseDeltaV     float64  `json:"phase_delta_v"`
	TofS            float64  `json:"tof_s"`
	PhaseAngleRad   float64  `json:"phase_angle_rad,omitempty"`
	SynodicPeriodS  float64  `json:"synodic_period_s,omitempty"`
	NextWindowS     float64  `json:"next_window_s,omitempty"`
}

// TransferQuoteAdvanced fetches a planner quote (spec.md §6 and §4.8).
func (c *Client) TransferQuoteAdvanced(ctx context.Context, fromID, toID string, departureTime, extraDvFraction float64) (TransferQuote, error) {
	path := fmt.Sprintf("/api/transfer_quote_advanced?from_id=%s&to_id=%s&departure_time=%g&extra_dv_fraction=%g",
		fromID, toID, departureTime, extraDvFraction)
	var q TransferQuote
	err := c.do(ctx, http.MethodGet, path, nil, &q)
	return q, err
}

// PorkchopGrid is the decoded 50x50 (or gridSize x gridSize) Δv heatmap.
type PorkchopGrid struct {
	DepartureTimes []float64   `json:"departure_times"`
	Tofs           []float64   `json:"tofs"`
	DeltaV         [][]float64 `json:"delta_v"`
}

// Porkchop fetches the porkchop Δv grid (spec.md §6 and §4.8).
func (c *Client) Porkchop(ctx context.Context, fromID, toID string, departureStart float64, gridSize int) (PorkchopGrid, error) {
	path := fmt.Sprintf("/api/transfer/porkchop?from_id=%s&to_id=%s&departure_start=%g&grid_size=%d",
		fromID, toID, departureStart, gridSize)
	var g PorkchopGrid
	err := c.do(ctx, http.MethodGet, path, nil, &g)
	return g, err
}
