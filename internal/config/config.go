// Package config handles loading the pomo config.toml file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the config.toml configuration file.
type Config struct {
	Timer   Timer   `toml:"timer"`
	Display Display `toml:"display"`
	Notify  Notify  `toml:"notify"`
	Storage Storage `toml:"storage"`
}

// Timer contains timer-related configuration.
type Timer struct {
	// DefaultMinutes is the duration used when `pomo start` is run
	// without one.
	DefaultMinutes int `toml:"default-minutes"`
}

// Display contains display-related configuration.
type Display struct {
	// RefreshInterval is how often the interactive display redraws,
	// as a duration string like "500ms".
	RefreshInterval string `toml:"refresh-interval"`
}

// Notify contains desktop notification configuration.
type Notify struct {
	// Enabled gates desktop notifications on timer completion.
	Enabled bool `toml:"enabled"`
}

// Storage contains persistence configuration.
type Storage struct {
	// DataDir overrides the default todo data directory.
	DataDir string `toml:"data-dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timer:   Timer{DefaultMinutes: 25},
		Display: Display{RefreshInterval: "500ms"},
		Notify:  Notify{Enabled: true},
	}
}

// Load reads the config file at path, applying defaults for anything
// unset. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// RefreshInterval parses the display refresh interval, falling back to
// the default on a malformed value.
func (c *Config) RefreshInterval() time.Duration {
	interval, err := time.ParseDuration(c.Display.RefreshInterval)
	if err != nil || interval <= 0 {
		return 500 * time.Millisecond
	}
	return interval
}
