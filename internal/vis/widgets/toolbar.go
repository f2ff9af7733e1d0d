package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/config"
	"github.com/elektrokombinacija/mapzoom/internal/vis/interact"
)

// Panels tracks which overlays cover the map and the offset they need.
type Panels struct {
	Offsets config.PanelOffsets
	Side    bool // desktop side panel
	Sheet   bool // mobile bottom sheet
}

// Offset returns the combined programmatic offset for the open panels.
func (p Panels) Offset() vec.Vec2 {
	var off vec.Vec2
	if p.Side {
		off = off.Add(p.Offsets.Desktop)
	}
	if p.Sheet {
		off = off.Add(p.Offsets.Mobile)
	}
	return off
}

// Toolbar provides the zoom and panel controls.
type Toolbar struct {
	camera *interact.Camera
	Panels Panels

	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
	resetBtn   widget.Clickable
	sideBtn    widget.Clickable
	sheetBtn   widget.Clickable
}

// NewToolbar creates a new toolbar.
func NewToolbar(camera *interact.Camera, offsets config.PanelOffsets) *Toolbar {
	return &Toolbar{
		camera: camera,
		Panels: Panels{Offsets: offsets},
	}
}

// ToggleSide opens or closes the side panel and shifts the map.
func (t *Toolbar) ToggleSide() {
	t.Panels.Side = !t.Panels.Side
	t.camera.SetOffset(t.Panels.Offset())
}

// ToggleSheet opens or closes the bottom sheet and shifts the map.
func (t *Toolbar) ToggleSheet() {
	t.Panels.Sheet = !t.Panels.Sheet
	t.camera.SetOffset(t.Panels.Offset())
}

// SetOffsets replaces the panel presets and re-applies the open panels.
func (t *Toolbar) SetOffsets(o config.PanelOffsets) {
	t.Panels.Offsets = o
	t.camera.SetOffset(t.Panels.Offset())
}

// ZoomStep zooms around the container centre by one wheel step.
func (t *Toolbar) ZoomStep(in bool) {
	d := t.camera.Dimensions()
	factor := interact.WheelZoomOut
	if in {
		factor = interact.WheelZoomIn
	}
	t.camera.ZoomAt(d.Vec().Mul(0.5), factor)
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(44))

	// Background
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	gtx.Constraints.Max.Y = height
	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.zoomOutBtn, "-", false)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.zoomInBtn, "+", false)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.resetBtn, "[]", false)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.sideBtn, "Panel", t.Panels.Side)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.sheetBtn, "Sheet", t.Panels.Sheet)
			}),

			// Spacer
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: image.Pt(gtx.Constraints.Min.X, 0)}
			}),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				f := t.camera.Frame()
				label := material.Label(th, unit.Sp(12),
					fmt.Sprintf("zoom %.2f  viewBox %s", f.Zoom, f.ViewBox))
				label.Color = color.NRGBA{R: 180, G: 185, B: 190, A: 255}
				return label.Layout(gtx)
			}),
		)
	})
}

func (t *Toolbar) button(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	}
	if btn.Hovered() {
		bg.R = min(bg.R+15, 255)
		bg.G = min(bg.G+15, 255)
		bg.B = min(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 32, Y: 28}
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, unit.Sp(12), text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.zoomInBtn.Clicked(gtx) {
		t.ZoomStep(true)
	}
	for t.zoomOutBtn.Clicked(gtx) {
		t.ZoomStep(false)
	}
	for t.resetBtn.Clicked(gtx) {
		t.camera.Reset()
	}
	for t.sideBtn.Clicked(gtx) {
		t.ToggleSide()
	}
	for t.sheetBtn.Clicked(gtx) {
		t.ToggleSheet()
	}
}
