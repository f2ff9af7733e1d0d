// Package widgets provides Gio UI widgets for the map viewer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/mapzoom/internal/core"
	"github.com/elektrokombinacija/mapzoom/internal/vis/draw"
	"github.com/elektrokombinacija/mapzoom/internal/vis/interact"
)

// scrollRange accepts any wheel distance; the camera only looks at the sign.
var scrollRange = pointer.ScrollRange{Min: -1 << 20, Max: 1 << 20}

// MapView is the zoomable map area.
type MapView struct {
	camera  *interact.Camera
	regions []draw.Region
	sites   []draw.Site
	size    image.Point
	frame   core.Frame // last frame the camera published

	// GridSize is the grid spacing in world units; zero disables the grid.
	GridSize float64
}

// NewMapView creates a map widget driven by camera.
func NewMapView(camera *interact.Camera, regions []draw.Region, sites []draw.Site) *MapView {
	return &MapView{
		camera:   camera,
		regions:  regions,
		sites:    sites,
		GridSize: 50,
	}
}

// Layout renders the map using the camera's latest frame.
func (m *MapView) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	if bounds != m.size {
		m.size = bounds
		m.camera.Resize(core.Dimensions{Width: float64(bounds.X), Height: float64(bounds.Y)})
	}

	// Clip to bounds
	area := clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops)
	defer area.Pop()

	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	m.handlePointerEvents(gtx)
	event.Op(gtx.Ops, m)
	m.camera.Cursor().GioCursor().Add(gtx.Ops)

	if f, changed := m.camera.Hub().Latest(); changed {
		m.frame = f
	}
	v := draw.NewView(m.frame, m.camera.Dimensions())
	draw.DrawGrid(gtx, v, m.GridSize, draw.ColorGridOnLand)
	draw.DrawRegions(gtx, m.regions, v)
	draw.DrawSites(gtx, th, m.sites, v, 3)
	draw.DrawZoomIndicator(gtx, m.camera.IndicatorPosition())

	return layout.Dimensions{Size: bounds}
}

func (m *MapView) handlePointerEvents(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  m,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: scrollRange,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			m.camera.HandleEvent(pe)
		}
	}
}
