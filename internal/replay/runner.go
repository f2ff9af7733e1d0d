package replay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"

	"github.com/elektrokombinacija/mapzoom/internal/core"
	"github.com/elektrokombinacija/mapzoom/internal/vis/interact"
	"github.com/elektrokombinacija/mapzoom/internal/vis/observer"
)

// ErrNotSettled is returned when a settle step exceeds the tick limit.
var ErrNotSettled = errors.New("animation did not settle")

// MaxSettleTicks bounds a settle step.
const MaxSettleTicks = 1000

// Result collects everything the camera published during a run.
type Result struct {
	Frames []core.Frame
	Final  core.Frame
	Ticks  int
}

// Runner replays scripts on a camera driven by a virtual clock.
type Runner struct {
	Interval time.Duration
	Log      *zap.Logger
}

// NewRunner returns a runner with a 16ms virtual frame interval.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Interval: interact.DefaultFrameInterval, Log: log}
}

// Run applies every step of s to a new camera. The context is checked
// between steps.
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	hub := observer.NewHub()
	unsub := hub.Subscribe(observer.Func(func(f core.Frame) {
		res.Frames = append(res.Frames, f)
	}))
	defer unsub()

	q := interact.NewFrameQueue(nil)
	cam := interact.NewCamera(
		interact.WithScheduler(q),
		interact.WithHub(hub),
		interact.WithLogger(r.Log),
		interact.WithDimensions(s.Container),
	)
	defer cam.Close()

	clock := time.Time{}
	flush := func() {
		clock = clock.Add(r.Interval)
		q.Flush(clock)
		res.Ticks++
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("step %d: %w", i, err)
		}
		pos := vec.Vec2{X: st.X, Y: st.Y}

		switch st.Op {
		case OpDown:
			cam.Down(st.ID, pos)
		case OpMove:
			cam.Move(st.ID, pos)
		case OpUp:
			cam.Up(st.ID)
		case OpCancel:
			cam.Cancel(st.ID)
		case OpWheel:
			cam.Wheel(pos, st.Delta)
		case OpZoom:
			cam.ZoomAt(pos, st.Factor)
		case OpOffset:
			cam.SetOffset(pos)
		case OpReset:
			cam.Reset()
		case OpResize:
			cam.Resize(core.Dimensions{Width: st.Width, Height: st.Height})
		case OpFrames:
			for n := 0; n < st.Count && q.Pending() > 0; n++ {
				flush()
			}
		case OpSettle:
			n := 0
			for q.Pending() > 0 {
				if n == MaxSettleTicks {
					return res, fmt.Errorf("step %d: %w after %d ticks", i, ErrNotSettled, n)
				}
				flush()
				n++
			}
		}
	}

	res.Final = cam.Frame()
	r.Log.Info("replay finished",
		zap.String("script", s.Name),
		zap.Int("steps", len(s.Steps)),
		zap.Int("frames", len(res.Frames)),
		zap.String("viewbox", res.Final.ViewBox.String()))
	return res, nil
}
