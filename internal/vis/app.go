// Package vis implements a Gio-based map viewer with wheel, drag and pinch
// navigation.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mapzoom/internal/config"
	"github.com/elektrokombinacija/mapzoom/internal/vis/interact"
	"github.com/elektrokombinacija/mapzoom/internal/vis/widgets"
)

// App is the main map viewer application.
type App struct {
	theme   *material.Theme
	mapView *widgets.MapView
	toolbar *widgets.Toolbar
	camera  *interact.Camera
	frames  *interact.FrameQueue
	log     *zap.Logger

	reload chan *config.Config
}

// NewApp creates a viewer configured by cfg.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	// Animation frames are flushed from the window's frame events.
	frames := interact.NewFrameQueue(nil)
	camera := interact.NewCamera(
		interact.WithScheduler(frames),
		interact.WithLogger(log.Named("camera")),
		interact.WithDimensions(cfg.Viewport.Container),
	)

	return &App{
		theme:   material.NewTheme(),
		mapView: widgets.NewMapView(camera, DefaultRegions(), DefaultSites()),
		toolbar: widgets.NewToolbar(camera, cfg.Viewport.PanelOffsets),
		camera:  camera,
		frames:  frames,
		log:     log,
		reload:  make(chan *config.Config, 1),
	}
}

// ApplyConfig queues cfg for the next frame. It may be called from any
// goroutine; only the newest pending config is kept. Callers should
// invalidate the window afterwards.
func (a *App) ApplyConfig(cfg *config.Config) {
	for {
		select {
		case a.reload <- cfg:
			return
		default:
			select {
			case <-a.reload:
			default:
			}
		}
	}
}

func (a *App) applyPending() {
	select {
	case cfg := <-a.reload:
		a.toolbar.SetOffsets(cfg.Viewport.PanelOffsets)
		a.log.Info("panel offsets updated",
			zap.Float64("desktop_x", cfg.Viewport.PanelOffsets.Desktop.X),
			zap.Float64("mobile_y", cfg.Viewport.PanelOffsets.Mobile.Y))
	default:
	}
}

// Camera returns the viewer's camera.
func (a *App) Camera() *interact.Camera { return a.camera }

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	defer a.camera.Close()

	a.frames.Wake = w.Invalidate

	// Event filters for keyboard input
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)

			a.applyPending()

			// Advance the camera animation before drawing so the frame shows
			// the eased state.
			a.frames.Flush(e.Now)

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case "R", key.NameHome:
		a.camera.Reset()
	case "+", "=":
		a.toolbar.ZoomStep(true)
	case "-":
		a.toolbar.ZoomStep(false)
	case "P":
		a.toolbar.ToggleSide()
	case "B":
		a.toolbar.ToggleSheet()
	case key.NameEscape:
		a.camera.CancelAll()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.mapView.Layout(gtx, a.theme)
		}),
	)
}
