// Package persist implements the single local-storage-equivalent key
// described in spec.md §6: a JSON-encoded map of panel id to its
// window geometry and open/minimized state. The desktop build backs it
// with a single file, written atomically via a temp-file-then-rename,
// grounded on engine/save/save.go's SaveGame.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PanelLayout is one panel's persisted geometry and visibility
// (spec.md §6: "{left, top, width, height, open, minimized}").
type PanelLayout struct {
	Left      float64 `json:"left"`
	Top       float64 `json:"top"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Open      bool    `json:"open"`
	Minimized bool    `json:"minimized"`
}

// LayoutStore is the persisted panel-id -> layout map a window manager
// reads on startup and writes on every panel move/resize/toggle.
type LayoutStore interface {
	Load() (map[string]PanelLayout, error)
	Save(map[string]PanelLayout) error
}

// FileStore is the desktop-build LayoutStore: a single JSON file.
type FileStore struct {
	path string
}

// DefaultLayoutPath is the single layout file location (spec.md §6:
// "a single key in the browser local store").
const DefaultLayoutPath = "state/layout.json"

// NewFileStore returns a FileStore at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewDefaultFileStore returns a FileStore at DefaultLayoutPath.
func NewDefaultFileStore() *FileStore {
	return &FileStore{path: DefaultLayoutPath}
}

// Load reads the layout map. A missing file is not an error (returns
// an empty map); a malformed file also falls back to an empty map,
// per spec.md §6: "Malformed reads fall back to empty."
func (s *FileStore) Load() (map[string]PanelLayout, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]PanelLayout{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persist: read layout: %w", err)
	}

	var layout map[string]PanelLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return map[string]PanelLayout{}, nil
	}
	if layout == nil {
		layout = map[string]PanelLayout{}
	}
	return layout, nil
}

// Save writes the layout map atomically: a temp file written then
// renamed into place, so a crash mid-write never corrupts the store.
func (s *FileStore) Save(layout map[string]PanelLayout) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("persist: create layout directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("persist: marshal layout: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("persist: write layout: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("persist: finalize layout: %w", err)
	}
	return nil
}
