package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// DrawCircle draws a filled circle in screen coordinates.
func DrawCircle(gtx layout.Context, center f32.Point, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(center.X+radius, center.Y))

	// Approximate circle with segments
	segments := 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		path.LineTo(f32.Pt(
			center.X+radius*float32(math.Cos(angle)),
			center.Y+radius*float32(math.Sin(angle)),
		))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// DrawLine draws a straight segment of the given width.
func DrawLine(gtx layout.Context, p1, p2 f32.Point, width float32, col color.NRGBA) {
	d := p2.Sub(p1)
	length := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if length < 0.1 {
		return
	}

	// Perpendicular for line width
	n := f32.Pt(-d.Y/length*width/2, d.X/length*width/2)

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(p1.Add(n))
	path.LineTo(p2.Add(n))
	path.LineTo(p2.Sub(n))
	path.LineTo(p1.Sub(n))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// DrawPolygon fills a closed polygon and strokes its outline.
func DrawPolygon(gtx layout.Context, pts []f32.Point, fill, stroke color.NRGBA, strokeWidth float32) {
	if len(pts) < 3 {
		return
	}

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(pts[0])
	for _, p := range pts[1:] {
		path.LineTo(p)
	}
	path.Close()
	paint.FillShape(gtx.Ops, fill, clip.Outline{Path: path.End()}.Op())

	if strokeWidth <= 0 {
		return
	}
	for i := range pts {
		DrawLine(gtx, pts[i], pts[(i+1)%len(pts)], strokeWidth, stroke)
	}
}
