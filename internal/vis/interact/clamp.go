package interact

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// ClampZoom limits zoom to [MinZoom, MaxZoom]. NaN maps to MinZoom.
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) || zoom < core.MinZoom {
		return core.MinZoom
	}
	if zoom > core.MaxZoom {
		return core.MaxZoom
	}
	return zoom
}

// ClampPan limits pan so the visible window stays inside the world extent.
// At MinZoom the only valid pan is the origin.
func ClampPan(pan vec.Vec2, zoom float64, dims core.Dimensions) vec.Vec2 {
	extent := VisibleExtent(zoom, dims)
	return vec.Vec2{
		X: clampAxis(pan.X, dims.Width-extent.X),
		Y: clampAxis(pan.Y, dims.Height-extent.Y),
	}
}

func clampAxis(v, limit float64) float64 {
	if math.IsNaN(v) || v < 0 || limit < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

// ViewBoxFor returns the clamped viewBox for a rendered state.
func ViewBoxFor(s core.ViewportState, dims core.Dimensions) core.ViewBox {
	zoom := ClampZoom(s.Zoom)
	extent := VisibleExtent(zoom, dims)
	pan := ClampPan(s.Pan, zoom, dims)
	return core.ViewBox{X: pan.X, Y: pan.Y, W: extent.X, H: extent.Y}
}
