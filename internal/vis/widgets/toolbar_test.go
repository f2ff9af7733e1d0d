package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/config"
	"github.com/elektrokombinacija/mapzoom/internal/core"
	"github.com/elektrokombinacija/mapzoom/internal/vis/interact"
)

func newToolbar(t *testing.T) (*Toolbar, *interact.Camera) {
	t.Helper()
	cam := interact.NewCamera(
		interact.WithScheduler(interact.NewFrameQueue(nil)),
		interact.WithDimensions(core.Dimensions{Width: 1000, Height: 600}),
	)
	t.Cleanup(cam.Close)
	return NewToolbar(cam, config.Default().Viewport.PanelOffsets), cam
}

func TestPanels_Offset(t *testing.T) {
	p := Panels{Offsets: config.Default().Viewport.PanelOffsets}
	assert.Equal(t, vec.Vec2{}, p.Offset())

	p.Side = true
	assert.Equal(t, vec.Vec2{X: 150}, p.Offset())

	p.Sheet = true
	assert.Equal(t, vec.Vec2{X: 150, Y: 100}, p.Offset())
}

func TestToolbar_TogglePanels(t *testing.T) {
	tb, cam := newToolbar(t)

	tb.ToggleSide()
	assert.Equal(t, vec.Vec2{X: 150}, cam.Offset())
	assert.Equal(t, vec.Vec2{X: 150}, cam.Target().Pan)

	tb.ToggleSheet()
	tb.ToggleSide()
	assert.Equal(t, vec.Vec2{Y: 100}, cam.Offset())
	assert.Equal(t, vec.Vec2{Y: 100}, cam.Target().Pan, "offsets replace, never accumulate")
}

func TestToolbar_ZoomStep(t *testing.T) {
	tb, cam := newToolbar(t)

	tb.ZoomStep(true)
	assert.InDelta(t, interact.WheelZoomIn, cam.TargetZoom(), 1e-12)

	tb.ZoomStep(false)
	assert.Equal(t, core.MinZoom, cam.TargetZoom(), "0.96 clamps to the minimum")
}

func TestToolbar_SetOffsets(t *testing.T) {
	tb, cam := newToolbar(t)
	tb.ToggleSide()

	tb.SetOffsets(config.PanelOffsets{Desktop: vec.Vec2{X: 300}})
	assert.Equal(t, vec.Vec2{X: 300}, cam.Offset())
	assert.Equal(t, vec.Vec2{X: 300}, cam.Target().Pan)
}
