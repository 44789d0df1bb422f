package persist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsEmptyMap(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	layout, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(layout) != 0 {
		t.Errorf("expected empty map for a missing file, got %+v", layout)
	}
}

func TestLoadMalformedFileFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	s := NewFileStore(path)
	layout, err := s.Load()
	if err != nil {
		t.Fatalf("Load should not error on malformed content, got %v", err)
	}
	if len(layout) != 0 {
		t.Errorf("expected empty map for malformed content, got %+v", layout)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layout.json")
	s := NewFileStore(path)

	want := map[string]PanelLayout{
		"infoPanel": {Left: 10, Top: 20, Width: 300, Height: 400, Open: true, Minimized: false},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got["infoPanel"] != want["infoPanel"] {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got["infoPanel"], want["infoPanel"])
	}
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	s := NewFileStore(path)
	if err := s.Save(map[string]PanelLayout{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("expected the temp file to be renamed away, stat err = %v", err)
	}
}
