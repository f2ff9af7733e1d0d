package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

func contact(id core.ContactID, x, y float64) core.Contact {
	return core.Contact{ID: id, Pos: vec.Vec2{X: x, Y: y}}
}

func TestGesture_DragRequiresZoom(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 100, 100), false)
	assert.False(t, g.Dragging())

	in := g.Move(contact(1, 200, 100))
	assert.Equal(t, IntentNone, in.Kind)
	assert.Equal(t, 1, g.Contacts())
}

func TestGesture_DragDeltaSinceLastMove(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 100, 100), true)
	require.True(t, g.Dragging())

	in := g.Move(contact(1, 90, 120))
	assert.Equal(t, IntentPan, in.Kind)
	assert.Equal(t, vec.Vec2{X: 10, Y: -20}, in.Delta)

	in = g.Move(contact(1, 80, 120))
	assert.Equal(t, vec.Vec2{X: 10, Y: 0}, in.Delta)

	g.Up(1, true)
	assert.False(t, g.Dragging())
	assert.Equal(t, 0, g.Contacts())
}

func TestGesture_SecondContactStartsPinch(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 400, 300), true)
	g.Down(contact(2, 600, 300), true)

	assert.False(t, g.Dragging())
	require.True(t, g.Pinching())
	base, ok := g.Baseline()
	require.True(t, ok)
	assert.Equal(t, 200.0, base.Distance)
	assert.Equal(t, vec.Vec2{X: 500, Y: 300}, base.Center)
}

func TestGesture_PinchIsRelative(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 400, 300), false)
	g.Down(contact(2, 600, 300), false)

	in := g.Move(contact(2, 700, 300))
	require.Equal(t, IntentZoom, in.Kind)
	assert.InDelta(t, 1.5, in.Scale, 1e-12)
	assert.Equal(t, vec.Vec2{X: 500, Y: 300}, in.Anchor)

	in = g.Move(contact(2, 800, 300))
	require.Equal(t, IntentZoom, in.Kind)
	assert.InDelta(t, 400.0/300.0, in.Scale, 1e-12)
	assert.Equal(t, vec.Vec2{X: 550, Y: 300}, in.Anchor)
}

func TestGesture_PinchUsesLowestIDs(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(7, 0, 0), false)
	g.Down(contact(3, 100, 0), false)
	g.Down(contact(5, 300, 0), false)

	base, ok := g.Baseline()
	require.True(t, ok)
	// pair is (3, 5)
	assert.Equal(t, 200.0, base.Distance)

	in := g.Move(contact(7, 50, 50))
	assert.Equal(t, IntentNone, in.Kind, "contact outside the pair must not zoom")

	g.Up(3, false)
	base, ok = g.Baseline()
	require.True(t, ok)
	// pair is now (5, 7)
	assert.InDelta(t, vec.Vec2{X: 250, Y: -50}.Length(), base.Distance, 1e-9)
}

func TestGesture_ZeroDistanceSkipped(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 100, 100), false)
	g.Down(contact(2, 100, 100), false)

	in := g.Move(contact(2, 200, 100))
	assert.Equal(t, IntentNone, in.Kind)

	// the baseline was replaced, so the next move is measured from 100px
	in = g.Move(contact(2, 300, 100))
	require.Equal(t, IntentZoom, in.Kind)
	assert.InDelta(t, 2.0, in.Scale, 1e-12)
}

func TestGesture_LiftToOneResumesDrag(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 400, 300), true)
	g.Down(contact(2, 600, 300), true)
	g.Move(contact(1, 380, 300))

	g.Up(2, true)
	assert.False(t, g.Pinching())
	require.True(t, g.Dragging())

	in := g.Move(contact(1, 370, 300))
	require.Equal(t, IntentPan, in.Kind)
	assert.Equal(t, vec.Vec2{X: 10, Y: 0}, in.Delta, "drag resumes from the current position")
}

func TestGesture_LiftToOneAtMinZoom(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 400, 300), false)
	g.Down(contact(2, 600, 300), false)
	g.Cancel(2, false)
	assert.False(t, g.Dragging())
	assert.False(t, g.Pinching())
}

func TestGesture_UnknownContactIgnored(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 0, 0), true)

	in := g.Move(contact(42, 10, 10))
	assert.Equal(t, IntentNone, in.Kind)
	g.Up(42, true)
	assert.True(t, g.Dragging())
	assert.Equal(t, 1, g.Contacts())
}

func TestGesture_ContactLimit(t *testing.T) {
	g := NewGestureTracker()
	for i := 0; i < MaxContacts+5; i++ {
		g.Down(contact(core.ContactID(i), float64(i), 0), false)
	}
	assert.Equal(t, MaxContacts, g.Contacts())
}

func TestGesture_Wheel(t *testing.T) {
	g := NewGestureTracker()
	pos := vec.Vec2{X: 10, Y: 20}

	in := g.Wheel(pos, -3)
	assert.Equal(t, Intent{Kind: IntentZoom, Anchor: pos, Scale: WheelZoomIn}, in)

	in = g.Wheel(pos, 120)
	assert.Equal(t, Intent{Kind: IntentZoom, Anchor: pos, Scale: WheelZoomOut}, in)

	in = g.Wheel(pos, 0)
	assert.Equal(t, IntentNone, in.Kind)
}

func TestGesture_Reset(t *testing.T) {
	g := NewGestureTracker()
	g.Down(contact(1, 0, 0), true)
	g.Down(contact(2, 10, 0), true)
	g.Reset()
	assert.Equal(t, 0, g.Contacts())
	assert.False(t, g.Dragging())
	assert.False(t, g.Pinching())
}
