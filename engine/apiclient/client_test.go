package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orbitalmap/engine/model"
)

func TestLocationsDecodesAndMissingFieldsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("dynamic") != "1" {
			t.Errorf("expected dynamic=1 query param, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "sun", "name": "Sun"},                 // missing most fields
			{"id": "loc_io", "parent_id": "sun", "x": 5}, // partial
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	locs, err := c.Locations(context.Background(), true, nil)
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if len(locs) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locs))
	}
	if locs[0].ID != "sun" || locs[0].IsGroup != false {
		t.Errorf("missing fields should zero-value, got %+v", locs[0])
	}
	if locs[1].ParentID != "sun" || locs[1].X != 5 {
		t.Errorf("partial fields should decode what's present, got %+v", locs[1])
	}
}

func TestStateDecodesShipsAndServerTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"server_time": 123.5, "time_scale": 2, "ships": [{"id": "ship_1", "status": "transit"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.State(context.Background())
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if resp.ServerTime != 123.5 || resp.TimeScale != 2 {
		t.Errorf("unexpected state response: %+v", resp)
	}
	if len(resp.Ships) != 1 || resp.Ships[0].ID != "ship_1" {
		t.Errorf("unexpected ships: %+v", resp.Ships)
	}
	if resp.Ships[0].Status != model.StatusTransit {
		t.Errorf("expected status transit, got %v", resp.Ships[0].Status)
	}
}

func TestTransferPostsBody(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Transfer(context.Background(), "ship_1", "loc_2"); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if gotBody["to_location_id"] != "loc_2" {
		t.Errorf("unexpected request body: %+v", gotBody)
	}
}

func TestNon2xxSurfacesDetailAsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "insufficient delta-v"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Transfer(context.Background(), "ship_1", "loc_2")
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.Detail != "insufficient delta-v" {
		t.Errorf("expected server detail string surfaced, got %q", statusErr.Detail)
	}
}

func TestPorkchopDecodesGrid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PorkchopGrid{
			DepartureTimes: []float64{0, 100},
			Tofs:           []float64{50, 150},
			DeltaV:         [][]float64{{1, 2}, {3, 4}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	grid, err := c.Porkchop(context.Background(), "earth", "mars", 0, 2)
	if err != nil {
		t.Fatalf("Porkchop: %v", err)
	}
	if len(grid.DeltaV) != 2 || grid.DeltaV[1][1] != 4 {
		t.Errorf("unexpected grid: %+v", grid)
	}
}
