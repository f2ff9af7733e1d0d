// Package core defines the viewport domain model shared by the controller,
// the renderer and the replay tooling.
package core

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Zoom limits. At MinZoom the visible window is exactly the container.
const (
	MinZoom = 1.0
	MaxZoom = 8.0
)

// Dimensions is a container size in screen pixels.
type Dimensions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Valid reports whether the dimensions can be divided by.
func (d Dimensions) Valid() bool {
	return finite(d.Width) && finite(d.Height) && d.Width > 0 && d.Height > 0
}

// Vec returns the dimensions as a vector.
func (d Dimensions) Vec() vec.Vec2 {
	return vec.Vec2{X: d.Width, Y: d.Height}
}

// ViewportState is a camera position: zoom factor plus the top-left corner
// of the visible window in world units.
type ViewportState struct {
	Zoom float64
	Pan  vec.Vec2
}

// NewViewportState returns the unzoomed, unpanned state.
func NewViewportState() ViewportState {
	return ViewportState{Zoom: MinZoom}
}

// Valid reports whether every component is a finite number and the zoom
// lies within [MinZoom, MaxZoom].
func (s ViewportState) Valid() bool {
	return finite(s.Pan.X) && finite(s.Pan.Y) &&
		s.Zoom >= MinZoom && s.Zoom <= MaxZoom
}

// ViewBox is the rectangle of world space shown in the container, in the
// order used by the SVG viewBox attribute.
type ViewBox struct {
	X, Y, W, H float64
}

// String formats the box as "x y w h".
func (v ViewBox) String() string {
	return formatNum(v.X) + " " + formatNum(v.Y) + " " + formatNum(v.W) + " " + formatNum(v.H)
}

// Center returns the world coordinate at the middle of the box.
func (v ViewBox) Center() vec.Vec2 {
	return vec.Vec2{X: v.X + v.W/2, Y: v.Y + v.H/2}
}

// Frame is the snapshot published after every state change.
type Frame struct {
	ViewBox    ViewBox
	Zoom       float64 // rendered zoom
	TargetZoom float64
	Dragging   bool
	Animating  bool
}

func formatNum(f float64) string {
	if f == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
