package interact

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, core.MinZoom},
		{1, 1},
		{3.7, 3.7},
		{8, 8},
		{12, core.MaxZoom},
		{math.NaN(), core.MinZoom},
		{math.Inf(1), core.MaxZoom},
		{math.Inf(-1), core.MinZoom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampZoom(tt.in), "ClampZoom(%v)", tt.in)
	}
}

func TestClampPan_Bounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	dims := core.Dimensions{Width: 1000, Height: 600}

	for i := 0; i < 1000; i++ {
		zoom := core.MinZoom + rng.Float64()*(core.MaxZoom-core.MinZoom)
		pan := vec.Vec2{X: rng.Float64()*6000 - 3000, Y: rng.Float64()*4000 - 2000}

		got := ClampPan(pan, zoom, dims)

		maxX := dims.Width * (1 - 1/zoom)
		maxY := dims.Height * (1 - 1/zoom)
		assert.GreaterOrEqual(t, got.X, 0.0)
		assert.GreaterOrEqual(t, got.Y, 0.0)
		assert.LessOrEqual(t, got.X, maxX+1e-9)
		assert.LessOrEqual(t, got.Y, maxY+1e-9)
	}
}

func TestClampPan_InsideUnchanged(t *testing.T) {
	dims := core.Dimensions{Width: 1000, Height: 600}
	pan := vec.Vec2{X: 100, Y: 80}
	assert.Equal(t, pan, ClampPan(pan, 2, dims))
}

func TestClampPan_MinZoomCollapses(t *testing.T) {
	dims := core.Dimensions{Width: 1000, Height: 600}
	for _, pan := range []vec.Vec2{{X: 300, Y: -20}, {X: -5, Y: 900}, {}} {
		assert.Equal(t, vec.Vec2{}, ClampPan(pan, core.MinZoom, dims))
	}
}

func TestClampPan_NaN(t *testing.T) {
	dims := core.Dimensions{Width: 1000, Height: 600}
	got := ClampPan(vec.Vec2{X: math.NaN(), Y: 10}, 2, dims)
	assert.Equal(t, vec.Vec2{X: 0, Y: 10}, got)
}

func TestViewBoxFor(t *testing.T) {
	dims := core.Dimensions{Width: 1000, Height: 600}
	s := core.ViewportState{Zoom: 4, Pan: vec.Vec2{X: 900, Y: -10}}

	vb := ViewBoxFor(s, dims)
	assert.Equal(t, core.ViewBox{X: 750, Y: 0, W: 250, H: 150}, vb)
}
