// Package config handles loading and validating swell settings from
// YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all swell settings.
type Config struct {
	Heights GridConfig   `yaml:"heights"`
	Flow    GridConfig   `yaml:"flow"`
	Viewer  ViewerConfig `yaml:"viewer"`
}

// GridConfig configures one simulation grid.
type GridConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	WorldX  float32 `yaml:"world_x"`
	WorldY  float32 `yaml:"world_y"`
	CenterX float32 `yaml:"center_x"`
	CenterY float32 `yaml:"center_y"`
}

// ViewerConfig configures the optional debug viewer.
type ViewerConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Addr       string `yaml:"addr"`
	IntervalMS int    `yaml:"interval_ms"`
}

// Default returns a Config with sensible default values: 64x64 grids
// over 128x128 world units, viewer disabled.
func Default() *Config {
	grid := GridConfig{
		Width:  64,
		Height: 64,
		WorldX: 128,
		WorldY: 128,
	}
	return &Config{
		Heights: grid,
		Flow:    grid,
		Viewer: ViewerConfig{
			Addr:       "localhost:8080",
			IntervalMS: 250,
		},
	}
}

// Load reads a config file, applying defaults for any field the file
// omits. A missing file is not an error: Load returns the defaults.
// The returned config is already validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns an error describing
// every invalid field. Invalid settings surface here, at configuration
// time, rather than from the grid and registry APIs.
func (c *Config) Validate() error {
	var errs []error

	for _, g := range []struct {
		name string
		cfg  GridConfig
	}{
		{"heights", c.Heights},
		{"flow", c.Flow},
	} {
		if g.cfg.Width < 2 || g.cfg.Height < 2 {
			errs = append(errs, fmt.Errorf("config: %s grid resolution %dx%d is below the 2x2 minimum",
				g.name, g.cfg.Width, g.cfg.Height))
		}
		if g.cfg.WorldX <= 0 || g.cfg.WorldY <= 0 {
			errs = append(errs, fmt.Errorf("config: %s grid world size %gx%g must be positive",
				g.name, g.cfg.WorldX, g.cfg.WorldY))
		}
	}

	if c.Viewer.Enabled && c.Viewer.Addr == "" {
		errs = append(errs, errors.New("config: viewer enabled without an address"))
	}
	if c.Viewer.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("config: viewer interval %dms must be positive", c.Viewer.IntervalMS))
	}

	return errors.Join(errs...)
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config files are not secrets
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
