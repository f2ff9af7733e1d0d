package interact

import (
	"math"
	"sync"
	"time"

	"github.com/elektrokombinacija/mapzoom/internal/core"
)

// Easing parameters. Each tick closes EaseFactor of the remaining distance;
// the loop stops once every component is within its epsilon.
const (
	EaseFactor  = 0.15
	ZoomEpsilon = 0.001
	PanEpsilon  = 0.5
)

// Ease advances rendered one tick toward target. When the two are close
// enough it returns target exactly and done = true.
func Ease(rendered, target core.ViewportState) (next core.ViewportState, done bool) {
	dz := target.Zoom - rendered.Zoom
	dp := target.Pan.Sub(rendered.Pan)

	if math.Abs(dz) < ZoomEpsilon && math.Abs(dp.X) < PanEpsilon && math.Abs(dp.Y) < PanEpsilon {
		return target, true
	}
	if !rendered.Valid() {
		// Nothing sensible to interpolate from.
		return target, true
	}

	next.Zoom = ClampZoom(rendered.Zoom + dz*EaseFactor)
	next.Pan = rendered.Pan.Add(dp.Mul(EaseFactor))
	return next, false
}

// Scheduler delivers animation frames. RequestFrame arranges for fn to run
// once on the next frame and returns a function that withdraws the request.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

// FrameQueue is a Scheduler driven by its host: the host calls Flush once per
// frame. Wake, when set, is called on every request so the host knows a
// frame is wanted (a Gio window passes its Invalidate).
type FrameQueue struct {
	Wake func()

	mu      sync.Mutex
	pending []*frameRequest
}

type frameRequest struct {
	fn       func(time.Time)
	canceled bool
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue(wake func()) *FrameQueue {
	return &FrameQueue{Wake: wake}
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func(time.Time)) func() {
	req := &frameRequest{fn: fn}
	q.mu.Lock()
	q.pending = append(q.pending, req)
	wake := q.Wake
	q.mu.Unlock()

	if wake != nil {
		wake()
	}
	return func() {
		q.mu.Lock()
		req.canceled = true
		q.mu.Unlock()
	}
}

// Flush runs every request queued before the call. Requests made while
// flushing wait for the next Flush. It returns the number of callbacks run.
func (q *FrameQueue) Flush(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	n := 0
	for _, req := range batch {
		q.mu.Lock()
		canceled := req.canceled
		q.mu.Unlock()
		if canceled {
			continue
		}
		req.fn(now)
		n++
	}
	return n
}

// Pending reports how many live requests wait for the next Flush.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, req := range q.pending {
		if !req.canceled {
			n++
		}
	}
	return n
}

// DefaultFrameInterval approximates a 60 Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

// TickerScheduler delivers frames from wall-clock timers, for hosts without
// a display loop of their own.
type TickerScheduler struct {
	Interval time.Duration
}

// NewTickerScheduler creates a scheduler firing after interval. A
// non-positive interval selects DefaultFrameInterval.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerScheduler{Interval: interval}
}

// RequestFrame runs fn once after the interval unless canceled first.
func (s *TickerScheduler) RequestFrame(fn func(time.Time)) func() {
	t := time.AfterFunc(s.Interval, func() {
		fn(time.Now())
	})
	return func() { t.Stop() }
}
