// Package config loads the orbital map client's configuration: a
// server base URL and sync poll intervals from the environment (via
// github.com/joho/godotenv, the teacher-adjacent idiom for loading a
// local .env file), and LOD/zoom tier profiles from a YAML file (via
// gopkg.in/yaml.v3), generalizing the universe-definition loading
// pattern in EverforgeWorks-Galaxies-Server's state.go.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"orbitalmap/engine/lod"
)

// Config is the client's runtime configuration.
type Config struct {
	ServerBaseURL string

	LocationsInterval time.Duration
	StateInterval     time.Duration
	OrgInterval       time.Duration

	LOD lod.Config
}

// Default returns the production defaults: localhost server, the
// cadences from spec.md §4.7, and lod.DefaultConfig's tier thresholds.
func Default() Config {
	return Config{
		ServerBaseURL:     "http://localhost:8080",
		LocationsInterval: 5 * time.Second,
		StateInterval:     1 * time.Second,
		OrgInterval:       30 * time.Second,
		LOD:               lod.DefaultConfig(),
	}
}

// Load reads a .env file (if present; missing is not an error) for
// ORBITALMAP_SERVER_URL and ORBITALMAP_*_INTERVAL_MS overrides, then
// layers a YAML LOD profile from lodConfigPath (if non-empty) on top
// of Default().
func Load(lodConfigPath string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if url := os.Getenv("ORBITALMAP_SERVER_URL"); url != "" {
		cfg.ServerBaseURL = url
	}
	if err := overrideDurationMS(&cfg.LocationsInterval, "ORBITALMAP_LOCATIONS_INTERVAL_MS"); err != nil {
		return Config{}, err
	}
	if err := overrideDurationMS(&cfg.StateInterval, "ORBITALMAP_STATE_INTERVAL_MS"); err != nil {
		return Config{}, err
	}
	if err := overrideDurationMS(&cfg.OrgInterval, "ORBITALMAP_ORG_INTERVAL_MS"); err != nil {
		return Config{}, err
	}

	if lodConfigPath != "" {
		lodCfg, err := loadLODProfile(lodConfigPath)
		if err != nil {
			return Config{}, err
		}
		cfg.LOD = lodCfg
	}

	return cfg, nil
}

func overrideDurationMS(dst *time.Duration, envVar string) error {
	raw := os.Getenv(envVar)
	if raw == "" {
		return nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("config: %s: %w", envVar, err)
	}
	*dst = time.Duration(ms) * time.Millisecond
	return nil
}

// lodProfile is the YAML shape for a LOD tier profile file.
type lodProfile struct {
	FullPixels    float64 `yaml:"full_pixels"`
	MinimalPixels float64 `yaml:"minimal_pixels"`
	Hysteresis    float64 `yaml:"hysteresis"`
}

func loadLODProfile(path string) (lod.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lod.Config{}, fmt.Errorf("config: read lod profile: %w", err)
	}
	var p lodProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return lod.Config{}, fmt.Errorf("config: parse lod profile: %w", err)
	}
	cfg := lod.DefaultConfig()
	if p.FullPixels > 0 {
		cfg.FullPixels = p.FullPixels
	}
	if p.MinimalPixels > 0 {
		cfg.MinimalPixels = p.MinimalPixels
	}
	if p.Hysteresis > 0 {
		cfg.Hysteresis = p.Hysteresis
	}
	return cfg, nil
}
