package draw

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"seehuhn.de/go/geom/vec"
)

// Colors for map features
var (
	ColorLand       = color.NRGBA{R: 58, G: 74, B: 66, A: 255}
	ColorCoast      = color.NRGBA{R: 120, G: 150, B: 130, A: 255}
	ColorSite       = color.NRGBA{R: 230, G: 170, B: 70, A: 255}
	ColorSiteMajor  = color.NRGBA{R: 240, G: 90, B: 80, A: 255}
	ColorSiteLabel  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	ColorGridOnLand = color.NRGBA{R: 40, G: 45, B: 50, A: 255}
)

// Region is a filled outline in normalised map coordinates.
type Region struct {
	Name    string
	Outline []vec.Vec2
}

// Site is a labelled point in normalised map coordinates.
type Site struct {
	Name  string
	Pos   vec.Vec2
	Major bool
}

// DrawRegions renders region outlines through v.
func DrawRegions(gtx layout.Context, regions []Region, v View) {
	stroke := float32(1.5 * v.Scale)
	for _, r := range regions {
		pts := make([]f32.Point, len(r.Outline))
		for i, p := range r.Outline {
			pts[i] = v.ToScreen(v.FromUnit(p))
		}
		DrawPolygon(gtx, pts, ColorLand, ColorCoast, stroke)
	}
}

// DrawSites renders site markers. Labels appear once the view is zoomed
// past labelZoom, and for major sites always.
func DrawSites(gtx layout.Context, th *material.Theme, sites []Site, v View, labelZoom float64) {
	for _, s := range sites {
		world := v.FromUnit(s.Pos)
		if !v.Visible(world) {
			continue
		}
		center := v.ToScreen(world)

		col, radius := ColorSite, float32(3)
		if s.Major {
			col, radius = ColorSiteMajor, 5
		}
		DrawCircle(gtx, center, radius*float32(v.Scale), col)

		if s.Major || v.Scale >= labelZoom {
			drawLabel(gtx, th, center.Add(f32.Pt(8, -8)), s.Name)
		}
	}
}

func drawLabel(gtx layout.Context, th *material.Theme, at f32.Point, text string) {
	defer op.Offset(image.Pt(int(at.X), int(at.Y))).Push(gtx.Ops).Pop()
	gtx.Constraints.Min = image.Point{}

	label := material.Label(th, unit.Sp(11), text)
	label.Color = ColorSiteLabel
	label.Layout(gtx)
}
