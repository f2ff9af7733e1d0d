package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapzoom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1600.0, cfg.Viewport.Container.Width)
	assert.Equal(t, 900.0, cfg.Viewport.Container.Height)
	assert.Equal(t, 16*time.Millisecond, cfg.Viewport.FrameInterval)
	assert.Equal(t, vec.Vec2{X: 150}, cfg.Viewport.PanelOffsets.Desktop)
	assert.Equal(t, vec.Vec2{Y: 100}, cfg.Viewport.PanelOffsets.Mobile)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
viewport:
  container: {width: 1000, height: 600}
  frame_interval: 8ms
  panel_offsets:
    desktop: {x: 200, y: 0}
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, cfg.Viewport.Container.Width)
	assert.Equal(t, 8*time.Millisecond, cfg.Viewport.FrameInterval)
	assert.Equal(t, vec.Vec2{X: 200}, cfg.Viewport.PanelOffsets.Desktop)
	assert.Equal(t, vec.Vec2{Y: 100}, cfg.Viewport.PanelOffsets.Mobile, "unset keys keep their default")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "zero width", content: "viewport:\n  container: {width: 0, height: 600}\n", invalid: true},
		{name: "negative interval", content: "viewport:\n  frame_interval: -1s\n", invalid: true},
		{name: "unknown format", content: "log:\n  format: xml\n", invalid: true},
		{name: "malformed yaml", content: "viewport: [", invalid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
