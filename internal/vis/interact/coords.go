package interact

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// ScreenToRelative returns the position of p inside the container,
// normalized so the container spans [0,1] on both axes. It reports false
// for an empty container.
func ScreenToRelative(p vec.Vec2, container rect.Rect) (vec.Vec2, bool) {
	w := container.URx - container.LLx
	h := container.URy - container.LLy
	if !(w > 0 && h > 0) {
		return vec.Vec2{}, false
	}
	return vec.Vec2{
		X: (p.X - container.LLx) / w,
		Y: (p.Y - container.LLy) / h,
	}, true
}

// VisibleExtent returns the width and height of world space visible at zoom.
func VisibleExtent(zoom float64, dims core.Dimensions) vec.Vec2 {
	return vec.Vec2{X: dims.Width / zoom, Y: dims.Height / zoom}
}

// ZoomAnchoredAt returns the pan that keeps the world point under the
// relative position rel fixed on screen while zoom changes from zoom0 to
// zoom1.
func ZoomAnchoredAt(zoom0 float64, pan0 vec.Vec2, zoom1 float64, rel vec.Vec2, dims core.Dimensions) vec.Vec2 {
	before := VisibleExtent(zoom0, dims)
	after := VisibleExtent(zoom1, dims)
	return vec.Vec2{
		X: pan0.X + (before.X-after.X)*rel.X,
		Y: pan0.Y + (before.Y-after.Y)*rel.Y,
	}
}

// WorldToScreen converts a world point to container-relative screen pixels.
func WorldToScreen(s core.ViewportState, world vec.Vec2) vec.Vec2 {
	return world.Sub(s.Pan).Mul(s.Zoom)
}

// ScreenToWorld converts container-relative screen pixels to world units.
func ScreenToWorld(s core.ViewportState, screen vec.Vec2) vec.Vec2 {
	return s.Pan.Add(screen.Mul(1 / s.Zoom))
}
