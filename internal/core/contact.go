package core

import "seehuhn.de/go/geom/vec"

// ContactID identifies one pointer or touch for the lifetime of a contact.
type ContactID int64

// Contact is one active pointer in screen coordinates.
type Contact struct {
	ID  ContactID
	Pos vec.Vec2
}

// PinchBaseline is the reference a pinch move is measured against. It is
// replaced after every move so each scale is relative to the previous one.
type PinchBaseline struct {
	Distance float64
	Center   vec.Vec2
}

// NewPinchBaseline computes distance and midpoint of two contacts.
func NewPinchBaseline(a, b Contact) PinchBaseline {
	return PinchBaseline{
		Distance: b.Pos.Sub(a.Pos).Length(),
		Center:   a.Pos.Add(b.Pos).Mul(0.5),
	}
}
