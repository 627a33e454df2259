package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the host-injected settings: grid shape, tempo, window and
// backing-store scaling, and debug switches. Device pixel ratio is explicit
// configuration here rather than an ambient global polled from the display.
type Config struct {
	GridWidth        int     `yaml:"grid_width"`
	GridHeight       int     `yaml:"grid_height"`
	BPM              int     `yaml:"bpm"`
	WindowWidth      int     `yaml:"window_width"`
	WindowHeight     int     `yaml:"window_height"`
	DevicePixelRatio float64 `yaml:"device_pixel_ratio"`
	DebugParticles   bool    `yaml:"debug_particles"`
	LogLevel         string  `yaml:"log_level"`
}

func Default() Config {
	return Config{
		GridWidth:        16,
		GridHeight:       16,
		BPM:              120,
		WindowWidth:      640,
		WindowHeight:     640,
		DevicePixelRatio: 1,
		LogLevel:         "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.GridWidth < 1 || c.GridHeight < 1 {
		return fmt.Errorf("config: grid %dx%d must be at least 1x1", c.GridWidth, c.GridHeight)
	}
	if c.BPM < 1 {
		return fmt.Errorf("config: bpm %d must be positive", c.BPM)
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		return fmt.Errorf("config: window %dx%d must be at least 1x1", c.WindowWidth, c.WindowHeight)
	}
	if c.DevicePixelRatio <= 0 {
		return fmt.Errorf("config: device pixel ratio %f must be positive", c.DevicePixelRatio)
	}
	return nil
}
