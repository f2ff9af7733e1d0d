package interact

import (
	"gioui.org/io/pointer"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// HandleEvent processes Gio pointer events for pan, pinch and wheel zoom.
// Positions are expected relative to the container.
func (c *Camera) HandleEvent(ev pointer.Event) {
	pos := vec.Vec2{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
	id := core.ContactID(ev.PointerID)

	switch ev.Kind {
	case pointer.Press:
		if ev.Source == pointer.Mouse && !ev.Buttons.Contain(pointer.ButtonPrimary) {
			return
		}
		c.Down(id, pos)

	case pointer.Drag:
		c.Move(id, pos)

	case pointer.Release:
		c.Up(id)

	case pointer.Cancel:
		// Gio cancels every pointer of the handler at once.
		c.CancelAll()

	case pointer.Scroll:
		c.Wheel(pos, float64(ev.Scroll.Y))
	}
}

// GioCursor returns the Gio cursor for c.
func (c Cursor) GioCursor() pointer.Cursor {
	switch c {
	case CursorGrab:
		return pointer.CursorGrab
	case CursorGrabbing:
		return pointer.CursorGrabbing
	default:
		return pointer.CursorDefault
	}
}
