package interact

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// MaxContacts bounds the live contact set. Downs beyond it are ignored.
const MaxContacts = 10

// Fixed wheel steps.
const (
	WheelZoomOut = 0.8
	WheelZoomIn  = 1.2
)

// IntentKind classifies what a pointer event asks the camera to do.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentPan             // move the target pan by Delta screen pixels
	IntentZoom            // scale the target zoom by Scale around Anchor
)

func (k IntentKind) String() string {
	return [...]string{"None", "Pan", "Zoom"}[k]
}

// Intent is the outcome of one gesture event.
type Intent struct {
	Kind   IntentKind
	Delta  vec.Vec2 // IntentPan: pan change in screen pixels
	Anchor vec.Vec2 // IntentZoom: fixed screen point
	Scale  float64  // IntentZoom: relative zoom factor
}

// GestureTracker turns raw pointer and wheel events into pan and zoom
// intents. It knows nothing about the camera except whether panning is
// currently allowed, which callers pass in.
type GestureTracker struct {
	contacts map[core.ContactID]vec.Vec2

	// Single-contact drag
	dragging bool
	dragID   core.ContactID
	last     vec.Vec2

	// Two-contact pinch
	pinching bool
	pair     [2]core.ContactID
	baseline core.PinchBaseline
}

// NewGestureTracker creates an idle tracker.
func NewGestureTracker() *GestureTracker {
	return &GestureTracker{
		contacts: make(map[core.ContactID]vec.Vec2),
	}
}

// Down registers a new contact. canPan reports whether the camera is
// zoomed in far enough for a drag to make sense.
func (g *GestureTracker) Down(c core.Contact, canPan bool) {
	if _, ok := g.contacts[c.ID]; !ok && len(g.contacts) >= MaxContacts {
		return
	}
	g.contacts[c.ID] = c.Pos

	switch n := len(g.contacts); {
	case n == 1:
		if canPan {
			g.startDrag(c.ID, c.Pos)
		}
	case n >= 2:
		g.dragging = false
		g.snapshot()
	}
}

// Move updates a contact position and returns the resulting intent.
// Unknown contacts are ignored.
func (g *GestureTracker) Move(c core.Contact) Intent {
	if _, ok := g.contacts[c.ID]; !ok {
		return Intent{}
	}
	g.contacts[c.ID] = c.Pos

	if g.pinching {
		if c.ID != g.pair[0] && c.ID != g.pair[1] {
			return Intent{}
		}
		prev := g.baseline
		g.baseline = g.pairBaseline()
		if !(prev.Distance > 0) || !(g.baseline.Distance > 0) {
			return Intent{}
		}
		return Intent{
			Kind:   IntentZoom,
			Anchor: prev.Center,
			Scale:  g.baseline.Distance / prev.Distance,
		}
	}

	if g.dragging && c.ID == g.dragID {
		delta := g.last.Sub(c.Pos)
		g.last = c.Pos
		return Intent{Kind: IntentPan, Delta: delta}
	}
	return Intent{}
}

// Up removes a contact. When a single contact remains and canPan is set the
// drag resumes from that contact's current position.
func (g *GestureTracker) Up(id core.ContactID, canPan bool) {
	if _, ok := g.contacts[id]; !ok {
		return
	}
	delete(g.contacts, id)
	if g.dragging && g.dragID == id {
		g.dragging = false
	}

	switch n := len(g.contacts); {
	case n == 0:
		g.pinching = false
		g.dragging = false
	case n == 1:
		g.pinching = false
		if canPan && !g.dragging {
			for rest, pos := range g.contacts {
				g.startDrag(rest, pos)
			}
		}
	default:
		g.snapshot()
	}
}

// Cancel drops a contact the platform gave up on. It behaves like Up.
func (g *GestureTracker) Cancel(id core.ContactID, canPan bool) {
	g.Up(id, canPan)
}

// Wheel converts a discrete wheel step into a zoom intent anchored at pos.
// A zero or NaN delta produces no intent.
func (g *GestureTracker) Wheel(pos vec.Vec2, deltaY float64) Intent {
	if deltaY == 0 || math.IsNaN(deltaY) {
		return Intent{}
	}
	scale := WheelZoomIn
	if deltaY > 0 {
		scale = WheelZoomOut
	}
	return Intent{Kind: IntentZoom, Anchor: pos, Scale: scale}
}

// StopDrag leaves the drag sub-state without touching the contact set.
func (g *GestureTracker) StopDrag() {
	g.dragging = false
}

// Reset forgets all contacts.
func (g *GestureTracker) Reset() {
	clear(g.contacts)
	g.dragging = false
	g.pinching = false
}

// Dragging reports whether a single-contact pan is in progress.
func (g *GestureTracker) Dragging() bool { return g.dragging }

// Pinching reports whether a two-contact zoom is in progress.
func (g *GestureTracker) Pinching() bool { return g.pinching }

// Contacts returns the number of live contacts.
func (g *GestureTracker) Contacts() int { return len(g.contacts) }

// Baseline returns the current pinch reference.
func (g *GestureTracker) Baseline() (core.PinchBaseline, bool) {
	return g.baseline, g.pinching
}

func (g *GestureTracker) startDrag(id core.ContactID, pos vec.Vec2) {
	g.dragging = true
	g.dragID = id
	g.last = pos
}

// snapshot picks the two lowest ids as the pinch pair and records their
// baseline.
func (g *GestureTracker) snapshot() {
	ids := make([]core.ContactID, 0, len(g.contacts))
	for id := range g.contacts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	g.pair = [2]core.ContactID{ids[0], ids[1]}
	g.pinching = true
	g.baseline = g.pairBaseline()
}

func (g *GestureTracker) pairBaseline() core.PinchBaseline {
	return core.NewPinchBaseline(
		core.Contact{ID: g.pair[0], Pos: g.contacts[g.pair[0]]},
		core.Contact{ID: g.pair[1], Pos: g.contacts[g.pair[1]]},
	)
}
