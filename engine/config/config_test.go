package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultMatchesSpecCadences(t *testing.T) {
	cfg := Default()
	if cfg.LocationsInterval != 5*time.Second {
		t.Errorf("locations interval = %v, want 5s", cfg.LocationsInterval)
	}
	if cfg.StateInterval != 1*time.Second {
		t.Errorf("state interval = %v, want 1s", cfg.StateInterval)
	}
	if cfg.OrgInterval != 30*time.Second {
		t.Errorf("org interval = %v, want 30s", cfg.OrgInterval)
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("ORBITALMAP_SERVER_URL", "http://example.test:9000")
	t.Setenv("ORBITALMAP_STATE_INTERVAL_MS", "2500")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerBaseURL != "http://example.test:9000" {
		t.Errorf("ServerBaseURL = %q, want overridden value", cfg.ServerBaseURL)
	}
	if cfg.StateInterval != 2500*time.Millisecond {
		t.Errorf("StateInterval = %v, want 2500ms", cfg.StateInterval)
	}
	// Untouched cadence should still be the default.
	if cfg.LocationsInterval != 5*time.Second {
		t.Errorf("LocationsInterval should remain default, got %v", cfg.LocationsInterval)
	}
}

func TestLoadInvalidIntervalReturnsError(t *testing.T) {
	t.Setenv("ORBITALMAP_LOCATIONS_INTERVAL_MS", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Fatal("expected an error for a non-numeric interval override")
	}
}

func TestLoadLODProfileOverridesTierThresholds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lod.yaml")
	if err := os.WriteFile(path, []byte("full_pixels: 30\nhysteresis: 0.3\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LOD.FullPixels != 30 {
		t.Errorf("FullPixels = %v, want 30 from profile", cfg.LOD.FullPixels)
	}
	if cfg.LOD.Hysteresis != 0.3 {
		t.Errorf("Hysteresis = %v, want 0.3 from profile", cfg.LOD.Hysteresis)
	}
	// MinimalPixels absent from the file should keep the default.
	if cfg.LOD.MinimalPixels != 4 {
		t.Errorf("MinimalPixels should remain default 4, got %v", cfg.LOD.MinimalPixels)
	}
}

func TestLoadMissingLODProfileReturnsError(t *testing.T) {
	if _, err := Load("/nonexistent/path/lod.yaml"); err == nil {
		t.Fatal("expected an error for a missing LOD profile file")
	}
}
