// Package draw provides rendering functions for the map view.
package draw

import (
	"gioui.org/f32"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// View projects world coordinates through a clamped viewBox onto a
// container of the given size.
type View struct {
	Box   core.ViewBox
	Dims  core.Dimensions
	Scale float64 // screen pixels per world unit
}

// NewView returns the projection for frame f in a container of size dims.
func NewView(f core.Frame, dims core.Dimensions) View {
	scale := 1.0
	if f.ViewBox.W > 0 {
		scale = dims.Width / f.ViewBox.W
	}
	return View{Box: f.ViewBox, Dims: dims, Scale: scale}
}

// ToScreen converts a world point to container pixels.
func (v View) ToScreen(p vec.Vec2) f32.Point {
	return f32.Pt(
		float32((p.X-v.Box.X)*v.Scale),
		float32((p.Y-v.Box.Y)*v.Scale),
	)
}

// ToWorld converts container pixels to a world point.
func (v View) ToWorld(p f32.Point) vec.Vec2 {
	return vec.Vec2{
		X: v.Box.X + float64(p.X)/v.Scale,
		Y: v.Box.Y + float64(p.Y)/v.Scale,
	}
}

// FromUnit maps normalised map coordinates in [0,1] to world units. The
// world spans the container at zoom 1.
func (v View) FromUnit(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.X * v.Dims.Width, Y: p.Y * v.Dims.Height}
}

// Visible reports whether the world point lies inside the viewBox.
func (v View) Visible(p vec.Vec2) bool {
	return p.X >= v.Box.X && p.X <= v.Box.X+v.Box.W &&
		p.Y >= v.Box.Y && p.Y <= v.Box.Y+v.Box.H
}
