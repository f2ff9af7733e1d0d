// Package interact handles user interactions like pan, zoom and pinch.
package interact

import (
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
	"github.com/elektrokombinacija/mapzoom/internal/vis/observer"
)

// Cursor is the pointer shape a host should show over the map.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
)

func (c Cursor) String() string {
	return [...]string{"default", "grab", "grabbing"}[c]
}

// Camera manages the view transformation (pan and zoom) of a map container.
//
// Gestures write the target state immediately; an animation loop eases the
// rendered state toward it one frame at a time and publishes a clamped
// viewBox on every tick. All methods are safe for concurrent use, but the
// camera assumes a single logical mutator.
type Camera struct {
	mu sync.Mutex

	container rect.Rect
	dims      core.Dimensions

	rendered core.ViewportState
	target   core.ViewportState
	offset   vec.Vec2 // programmatic shift in screen pixels

	gestures *GestureTracker

	sched       Scheduler
	cancelFrame func() // non-nil while a frame is requested
	closed      bool

	hub *observer.Hub
	log *zap.Logger
}

// Option configures a Camera.
type Option func(*Camera)

// WithScheduler sets the frame source. The default is a TickerScheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Camera) { c.sched = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Camera) { c.log = l }
}

// WithDimensions sets the initial container size.
func WithDimensions(d core.Dimensions) Option {
	return func(c *Camera) { c.setDims(d) }
}

// WithHub publishes frames to an existing hub.
func WithHub(h *observer.Hub) Option {
	return func(c *Camera) { c.hub = h }
}

// NewCamera creates a camera at zoom 1 with no pan.
func NewCamera(opts ...Option) *Camera {
	c := &Camera{
		rendered: core.NewViewportState(),
		target:   core.NewViewportState(),
		gestures: NewGestureTracker(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sched == nil {
		c.sched = NewTickerScheduler(DefaultFrameInterval)
	}
	if c.hub == nil {
		c.hub = observer.NewHub()
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Hub returns the hub frames are published to.
func (c *Camera) Hub() *observer.Hub { return c.hub }

// Subscribe registers an observer for published frames.
func (c *Camera) Subscribe(o observer.Observer) (unsubscribe func()) {
	return c.hub.Subscribe(o)
}

// Resize sets the container size, with the container at the screen origin.
func (c *Camera) Resize(d core.Dimensions) {
	c.mu.Lock()
	c.setDims(d)
	f := c.frameLocked()
	c.mu.Unlock()
	c.hub.Publish(f)
}

// SetContainer sets the container rectangle in screen coordinates. Pointer
// positions passed to the camera are interpreted in the same space.
func (c *Camera) SetContainer(r rect.Rect) {
	c.mu.Lock()
	c.container = r
	c.dims = core.Dimensions{Width: r.URx - r.LLx, Height: r.URy - r.LLy}
	f := c.frameLocked()
	c.mu.Unlock()
	c.hub.Publish(f)
}

func (c *Camera) setDims(d core.Dimensions) {
	c.dims = d
	c.container = rect.Rect{URx: d.Width, URy: d.Height}
}

// Down registers a new contact at pos.
func (c *Camera) Down(id core.ContactID, pos vec.Vec2) {
	c.mu.Lock()
	was := c.gestures.Dragging()
	wasPinching := c.gestures.Pinching()
	c.gestures.Down(core.Contact{ID: id, Pos: pos}, c.canPanLocked())
	if !wasPinching && c.gestures.Pinching() {
		c.log.Debug("pinch started", zap.Int64("contact", int64(id)))
	}
	c.commitLocked(was)
}

// Move updates a contact and applies the resulting pan or zoom.
func (c *Camera) Move(id core.ContactID, pos vec.Vec2) {
	c.mu.Lock()
	was := c.gestures.Dragging()
	c.applyLocked(c.gestures.Move(core.Contact{ID: id, Pos: pos}))
	c.commitLocked(was)
}

// Up removes a released contact.
func (c *Camera) Up(id core.ContactID) {
	c.mu.Lock()
	was := c.gestures.Dragging()
	wasPinching := c.gestures.Pinching()
	c.gestures.Up(id, c.canPanLocked())
	if wasPinching && !c.gestures.Pinching() {
		c.log.Debug("pinch ended", zap.Int("contacts", c.gestures.Contacts()))
	}
	c.commitLocked(was)
}

// Cancel removes a contact the platform interrupted.
func (c *Camera) Cancel(id core.ContactID) {
	c.mu.Lock()
	was := c.gestures.Dragging()
	c.gestures.Cancel(id, c.canPanLocked())
	c.commitLocked(was)
}

// CancelAll drops every contact, for platforms that cancel whole gestures.
func (c *Camera) CancelAll() {
	c.mu.Lock()
	was := c.gestures.Dragging()
	c.gestures.Reset()
	c.commitLocked(was)
}

// Wheel applies one fixed zoom step anchored at pos: out for positive
// deltaY, in for negative.
func (c *Camera) Wheel(pos vec.Vec2, deltaY float64) {
	c.mu.Lock()
	was := c.gestures.Dragging()
	c.applyLocked(c.gestures.Wheel(pos, deltaY))
	c.commitLocked(was)
}

// ZoomAt scales the target zoom by factor, keeping the world point under
// the screen point anchor fixed.
func (c *Camera) ZoomAt(anchor vec.Vec2, factor float64) {
	c.mu.Lock()
	c.applyZoomLocked(anchor, factor)
	c.mu.Unlock()
}

// SetOffset shifts the view by a programmatic offset in screen pixels,
// for example to make room for a side panel. The previous offset is
// replaced, not accumulated, and user pan is preserved.
func (c *Camera) SetOffset(px vec.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !finiteVec(px) {
		return
	}
	z := c.target.Zoom
	shift := px.Sub(c.offset).Mul(1 / z)
	c.target.Pan = c.target.Pan.Add(shift)
	c.offset = px
	c.log.Debug("offset changed",
		zap.Float64("x", px.X), zap.Float64("y", px.Y))
	c.startLocked()
}

// Reset animates back to zoom 1, keeping the programmatic offset.
func (c *Camera) Reset() {
	c.mu.Lock()
	was := c.gestures.Dragging()
	c.gestures.StopDrag()
	c.target = core.ViewportState{
		Zoom: core.MinZoom,
		Pan:  c.offset.Mul(1 / core.MinZoom),
	}
	c.startLocked()
	c.commitLocked(was)
}

// Close stops the animation loop. Frames already scheduled become no-ops.
func (c *Camera) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancelFrame != nil {
		c.cancelFrame()
		c.cancelFrame = nil
	}
	c.gestures.Reset()
}

// Zoom returns the rendered zoom.
func (c *Camera) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rendered.Zoom
}

// TargetZoom returns the zoom the animation is heading for.
func (c *Camera) TargetZoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target.Zoom
}

// State returns the rendered state.
func (c *Camera) State() core.ViewportState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rendered
}

// Target returns the target state.
func (c *Camera) Target() core.ViewportState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Offset returns the programmatic offset in screen pixels.
func (c *Camera) Offset() vec.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// Dimensions returns the container size.
func (c *Camera) Dimensions() core.Dimensions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dims
}

// Dragging reports whether a single-contact pan is in progress.
func (c *Camera) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gestures.Dragging()
}

// Animating reports whether a frame is pending.
func (c *Camera) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelFrame != nil
}

// ViewBox returns the clamped viewBox for the rendered state.
func (c *Camera) ViewBox() core.ViewBox {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ViewBoxFor(c.rendered, c.dims)
}

// ViewBoxString returns the viewBox as "x y w h".
func (c *Camera) ViewBoxString() string {
	return c.ViewBox().String()
}

// Frame returns the current snapshot without publishing it.
func (c *Camera) Frame() core.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

// IndicatorPosition maps the rendered zoom onto [0,1] for a zoom slider.
func (c *Camera) IndicatorPosition() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return (c.rendered.Zoom - core.MinZoom) / (core.MaxZoom - core.MinZoom)
}

// Cursor returns the pointer shape for the current interaction.
func (c *Camera) Cursor() Cursor {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.gestures.Dragging():
		return CursorGrabbing
	case c.rendered.Zoom > core.MinZoom:
		return CursorGrab
	default:
		return CursorDefault
	}
}

func (c *Camera) canPanLocked() bool {
	return c.dims.Valid() && c.target.Zoom > core.MinZoom
}

func (c *Camera) applyLocked(in Intent) {
	switch in.Kind {
	case IntentPan:
		c.applyPanLocked(in.Delta)
	case IntentZoom:
		c.applyZoomLocked(in.Anchor, in.Scale)
	}
}

func (c *Camera) applyPanLocked(delta vec.Vec2) {
	if !c.canPanLocked() {
		c.gestures.StopDrag()
		return
	}
	next := c.target.Pan.Add(delta.Mul(1 / c.target.Zoom))
	if !finiteVec(next) {
		return
	}
	c.target.Pan = next
	c.startLocked()
}

func (c *Camera) applyZoomLocked(anchor vec.Vec2, scale float64) {
	if !c.dims.Valid() {
		c.log.Debug("zoom skipped: container not ready")
		return
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return
	}
	zoom := ClampZoom(c.target.Zoom * scale)
	if zoom == c.target.Zoom {
		return
	}
	rel, ok := ScreenToRelative(anchor, c.container)
	if !ok || !finiteVec(rel) {
		return
	}
	pan := ZoomAnchoredAt(c.target.Zoom, c.target.Pan, zoom, rel, c.dims)
	if !finiteVec(pan) {
		return
	}
	c.target = core.ViewportState{Zoom: zoom, Pan: pan}
	if zoom == core.MinZoom {
		c.gestures.StopDrag()
	}
	c.startLocked()
}

// startLocked requests a frame unless one is already pending.
func (c *Camera) startLocked() {
	if c.closed || c.cancelFrame != nil {
		return
	}
	c.cancelFrame = c.sched.RequestFrame(c.tick)
	c.log.Debug("animation started", zap.Float64("target_zoom", c.target.Zoom))
}

func (c *Camera) tick(time.Time) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelFrame = nil

	next, done := Ease(c.rendered, c.target)
	c.rendered = next
	if done {
		c.log.Debug("animation settled",
			zap.Float64("zoom", next.Zoom),
			zap.Float64("pan_x", next.Pan.X),
			zap.Float64("pan_y", next.Pan.Y))
	} else {
		c.cancelFrame = c.sched.RequestFrame(c.tick)
	}
	f := c.frameLocked()
	c.mu.Unlock()

	c.hub.Publish(f)
}

// commitLocked unlocks and publishes a frame when the drag state changed;
// everything else reaches observers through the animation loop.
func (c *Camera) commitLocked(wasDragging bool) {
	changed := wasDragging != c.gestures.Dragging()
	if changed {
		c.log.Debug("drag state changed", zap.Bool("dragging", c.gestures.Dragging()))
	}
	f := c.frameLocked()
	c.mu.Unlock()
	if changed {
		c.hub.Publish(f)
	}
}

func (c *Camera) frameLocked() core.Frame {
	return core.Frame{
		ViewBox:    ViewBoxFor(c.rendered, c.dims),
		Zoom:       c.rendered.Zoom,
		TargetZoom: c.target.Zoom,
		Dragging:   c.gestures.Dragging(),
		Animating:  c.cancelFrame != nil,
	}
}

func finiteVec(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
