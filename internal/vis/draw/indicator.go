package draw

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Zoom indicator geometry in pixels.
const (
	indicatorWidth  = 6
	indicatorHeight = 120
	indicatorMargin = 16
	indicatorKnob   = 12
)

var (
	colorTrack = color.NRGBA{R: 55, G: 58, B: 65, A: 200}
	colorKnob  = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
)

// IndicatorKnobY returns the knob offset from the top of the track for a
// zoom position in [0,1]. Position 1 puts the knob at the top.
func IndicatorKnobY(pos float64) int {
	pos = min(max(pos, 0), 1)
	return int(float64(indicatorHeight-indicatorKnob) * (1 - pos))
}

// DrawZoomIndicator draws a vertical zoom track at the right edge of the
// current constraints.
func DrawZoomIndicator(gtx layout.Context, pos float64) layout.Dimensions {
	x := gtx.Constraints.Max.X - indicatorMargin - indicatorWidth
	defer op.Offset(image.Pt(x, indicatorMargin)).Push(gtx.Ops).Pop()

	rr := clip.RRect{Rect: image.Rect(0, 0, indicatorWidth, indicatorHeight), NE: 3, NW: 3, SE: 3, SW: 3}
	paint.FillShape(gtx.Ops, colorTrack, rr.Op(gtx.Ops))

	y := IndicatorKnobY(pos)
	cx := indicatorWidth / 2
	knob := image.Rect(cx-indicatorKnob/2, y, cx+indicatorKnob/2, y+indicatorKnob)
	paint.FillShape(gtx.Ops, colorKnob, clip.Ellipse(knob).Op(gtx.Ops))

	return layout.Dimensions{Size: image.Pt(indicatorWidth, indicatorHeight)}
}
