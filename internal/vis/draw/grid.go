package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"seehuhn.de/go/geom/vec"
)

// DrawGrid draws a background grid with the given spacing in world units.
func DrawGrid(gtx layout.Context, v View, gridSize float64, col color.NRGBA) {
	if !(gridSize > 0) {
		return
	}
	bounds := gtx.Constraints.Max

	// Snap to grid
	startX := math.Floor(v.Box.X/gridSize) * gridSize
	startY := math.Floor(v.Box.Y/gridSize) * gridSize

	for x := startX; x <= v.Box.X+v.Box.W; x += gridSize {
		sx := int(v.ToScreen(vec.Vec2{X: x, Y: v.Box.Y}).X)
		if sx >= 0 && sx <= bounds.X {
			paint.FillShape(gtx.Ops, col, clip.Rect(image.Rect(sx, 0, sx+1, bounds.Y)).Op())
		}
	}

	for y := startY; y <= v.Box.Y+v.Box.H; y += gridSize {
		sy := int(v.ToScreen(vec.Vec2{X: v.Box.X, Y: y}).Y)
		if sy >= 0 && sy <= bounds.Y {
			paint.FillShape(gtx.Ops, col, clip.Rect(image.Rect(0, sy, bounds.X, sy+1)).Op())
		}
	}
}
