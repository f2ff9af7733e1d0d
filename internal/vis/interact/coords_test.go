package interact

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

func TestScreenToRelative(t *testing.T) {
	container := rect.Rect{LLx: 100, LLy: 50, URx: 1100, URy: 650}

	rel, ok := ScreenToRelative(vec.Vec2{X: 600, Y: 350}, container)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 0.5, Y: 0.5}, rel)

	rel, ok = ScreenToRelative(vec.Vec2{X: 100, Y: 650}, container)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 0, Y: 1}, rel)
}

func TestScreenToRelative_EmptyContainer(t *testing.T) {
	_, ok := ScreenToRelative(vec.Vec2{X: 10, Y: 10}, rect.Rect{})
	assert.False(t, ok)

	_, ok = ScreenToRelative(vec.Vec2{X: 10, Y: 10}, rect.Rect{URx: 100})
	assert.False(t, ok)
}

func TestVisibleExtent(t *testing.T) {
	dims := core.Dimensions{Width: 1000, Height: 600}
	assert.Equal(t, vec.Vec2{X: 1000, Y: 600}, VisibleExtent(1, dims))
	assert.Equal(t, vec.Vec2{X: 250, Y: 150}, VisibleExtent(4, dims))
}

// The world point under the anchor must stay under the anchor for any pair
// of zoom levels.
func TestZoomAnchoredAt_KeepsAnchorFixed(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	dims := core.Dimensions{Width: 1000, Height: 600}

	for i := 0; i < 1000; i++ {
		z0 := core.MinZoom + rng.Float64()*(core.MaxZoom-core.MinZoom)
		z1 := core.MinZoom + rng.Float64()*(core.MaxZoom-core.MinZoom)
		rel := vec.Vec2{X: rng.Float64(), Y: rng.Float64()}
		pan0 := vec.Vec2{X: rng.Float64()*2000 - 500, Y: rng.Float64()*1200 - 300}

		screen := vec.Vec2{X: rel.X * dims.Width, Y: rel.Y * dims.Height}
		before := core.ViewportState{Zoom: z0, Pan: pan0}
		world := ScreenToWorld(before, screen)

		after := core.ViewportState{Zoom: z1, Pan: ZoomAnchoredAt(z0, pan0, z1, rel, dims)}
		got := WorldToScreen(after, world)

		assert.InDelta(t, screen.X, got.X, 1e-9, "z0=%v z1=%v rel=%v", z0, z1, rel)
		assert.InDelta(t, screen.Y, got.Y, 1e-9, "z0=%v z1=%v rel=%v", z0, z1, rel)
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	s := core.ViewportState{Zoom: 2.5, Pan: vec.Vec2{X: 120, Y: 40}}
	p := vec.Vec2{X: 333, Y: 222}
	got := WorldToScreen(s, ScreenToWorld(s, p))
	assert.InDelta(t, p.X, got.X, 1e-9)
	assert.InDelta(t, p.Y, got.Y, 1e-9)
}
