package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mapzoom/internal/config"
	"github.com/elektrokombinacija/mapzoom/internal/core"
	"github.com/elektrokombinacija/mapzoom/internal/logging"
	"github.com/elektrokombinacija/mapzoom/internal/replay"
)

// globals holds the state shared by all subcommands.
type globals struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "mapzoom",
		Short: "Replay pan and zoom gestures against the map camera",
		Long: `mapzoom drives the map camera with scripted pointer input on a virtual
frame clock and prints the viewBox published on every frame.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if g.logLevel != "" {
				cfg.Log.Level = g.logLevel
			}
			log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			g.cfg = cfg
			g.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.log != nil {
				_ = g.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newReplayCommand(g))
	cmd.AddCommand(newScenarioCommand(g))

	return cmd
}

// replay runs s with the configured frame interval. Scripts without a
// container use the configured default size.
func (g *globals) replay(ctx context.Context, s *replay.Script) (*replay.Result, error) {
	if !s.Container.Valid() {
		s.Container = g.cfg.Viewport.Container
	}

	r := replay.NewRunner(g.log)
	r.Interval = g.cfg.Viewport.FrameInterval
	return r.Run(ctx, s)
}

// printResult writes one line per published frame and a summary line.
func printResult(w io.Writer, res *replay.Result, quiet bool) {
	if !quiet {
		for i, f := range res.Frames {
			printFrame(w, i, f)
		}
	}
	fmt.Fprintf(w, "final: viewBox=%q zoom=%.4f frames=%d ticks=%d\n",
		res.Final.ViewBox.String(), res.Final.Zoom, len(res.Frames), res.Ticks)
}

func printFrame(w io.Writer, i int, f core.Frame) {
	flags := ""
	if f.Dragging {
		flags += " dragging"
	}
	if f.Animating {
		flags += " animating"
	}
	fmt.Fprintf(w, "%4d  %-40s zoom=%.4f%s\n", i, f.ViewBox.String(), f.Zoom, flags)
}

