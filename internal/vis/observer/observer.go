// Package observer publishes viewport frames to the rendering layer.
//
// Consumers either subscribe and are called on every published frame, or
// poll Latest once per display frame and redraw only when it reports a change.
package observer

import (
	"sync"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// Observer is the interface for receiving viewport frames.
type Observer interface {
	// OnFrame is called with every frame the camera publishes.
	OnFrame(f core.Frame)
}

// Func adapts a plain function to the Observer interface.
type Func func(f core.Frame)

// OnFrame calls f.
func (f Func) OnFrame(frame core.Frame) { f(frame) }

// Hub fans frames out to subscribers and keeps the most recent one.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]Observer
	nextID int

	latest core.Frame
	dirty  bool
	count  int
}

// NewHub creates a hub without subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]Observer)}
}

// Subscribe registers o and returns a function that removes it again.
func (h *Hub) Subscribe(o Observer) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = o
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Publish records f as the latest frame and notifies every subscriber.
// Subscribers run on the caller's goroutine, outside the hub lock.
func (h *Hub) Publish(f core.Frame) {
	h.mu.Lock()
	h.latest = f
	h.dirty = true
	h.count++
	subs := make([]Observer, 0, len(h.subs))
	for _, o := range h.subs {
		subs = append(subs, o)
	}
	h.mu.Unlock()

	for _, o := range subs {
		o.OnFrame(f)
	}
}

// Latest returns the most recent frame and whether it changed since the
// previous call to Latest.
func (h *Hub) Latest() (core.Frame, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	changed := h.dirty
	h.dirty = false
	return h.latest, changed
}

// Published returns how many frames were published so far.
func (h *Hub) Published() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}
