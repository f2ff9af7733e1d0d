package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"seehuhn.de/go/geom/vec"
)

func TestWatcher_Reload(t *testing.T) {
	path := writeFile(t, "log:\n  level: info\n")

	obsCore, logs := observer.New(zapcore.InfoLevel)
	w, err := NewWatcher(path, zap.New(obsCore))
	require.NoError(t, err)
	w.Debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	got := make(chan *Config, 4)
	go func() {
		defer close(done)
		w.Run(ctx, func(c *Config) { got <- c })
	}()
	defer func() {
		cancel()
		<-done
	}()

	// invalid edit is skipped
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0o644))
	require.Eventually(t, func() bool {
		return logs.FilterMessage("config reload failed").Len() > 0
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`
viewport:
  panel_offsets:
    desktop: {x: 300, y: 0}
`), 0o644))

	timeout := time.After(2 * time.Second)
	for {
		select {
		case c := <-got:
			if c.Viewport.PanelOffsets.Desktop == (vec.Vec2{X: 300}) {
				return
			}
		case <-timeout:
			t.Fatal("no reload delivered")
		}
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path := writeFile(t, "")
	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.Debounce = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	calls := 0
	go func() {
		assert.NoError(t, os.WriteFile(path+".bak", []byte("x"), 0o644))
	}()
	w.Run(ctx, func(*Config) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher("/does/not/exist/mapzoom.yaml", nil)
	assert.Error(t, err)
}
