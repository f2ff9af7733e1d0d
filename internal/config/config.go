// Package config loads the map viewer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// ErrInvalid is returned by Validate and Load for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration.
type Config struct {
	Viewport Viewport `yaml:"viewport"`
	Log      Log      `yaml:"log"`
}

// Viewport holds the camera settings.
type Viewport struct {
	// Container is the size used before the host reports a real one.
	Container     core.Dimensions `yaml:"container"`
	FrameInterval time.Duration   `yaml:"frame_interval"`
	PanelOffsets  PanelOffsets    `yaml:"panel_offsets"`
}

// PanelOffsets are the programmatic shifts applied while a side panel
// (desktop) or a bottom sheet (mobile) covers part of the map.
type PanelOffsets struct {
	Desktop vec.Vec2 `yaml:"desktop"`
	Mobile  vec.Vec2 `yaml:"mobile"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Viewport: Viewport{
			Container:     core.Dimensions{Width: 1600, Height: 900},
			FrameInterval: 16 * time.Millisecond,
			PanelOffsets: PanelOffsets{
				Desktop: vec.Vec2{X: 150, Y: 0},
				Mobile:  vec.Vec2{X: 0, Y: 100},
			},
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if !c.Viewport.Container.Valid() {
		return fmt.Errorf("%w: container %gx%g must be positive",
			ErrInvalid, c.Viewport.Container.Width, c.Viewport.Container.Height)
	}
	if c.Viewport.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive", ErrInvalid)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
