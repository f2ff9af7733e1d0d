// Command mapzoomvis opens a zoomable map window driven by the camera
// controller.
package main

import (
	"context"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mapzoom/internal/config"
	"github.com/elektrokombinacija/mapzoom/internal/logging"
	"github.com/elektrokombinacija/mapzoom/internal/vis"
)

func main() {
	var (
		configPath string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "mapzoomvis",
		Short: "Open the map viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var watcher *config.Watcher
			if watch && configPath != "" {
				if watcher, err = config.NewWatcher(configPath, logger.Named("config")); err != nil {
					return err
				}
			}

			go func() {
				window := new(app.Window)
				window.Option(
					app.Title("Map Viewer"),
					app.Size(unit.Dp(cfg.Viewport.Container.Width), unit.Dp(cfg.Viewport.Container.Height)),
				)

				application := vis.NewApp(cfg, logger)

				ctx, cancel := context.WithCancel(context.Background())
				if watcher != nil {
					go watcher.Run(ctx, func(c *config.Config) {
						application.ApplyConfig(c)
						window.Invalidate()
					})
				}

				err := application.Run(window)
				cancel()
				if err != nil {
					logger.Error("viewer stopped", zap.Error(err))
					_ = logger.Sync()
					log.Fatal(err)
				}
				_ = logger.Sync()
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().BoolVar(&watch, "watch", true, "Reload panel offsets when the config file changes")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
