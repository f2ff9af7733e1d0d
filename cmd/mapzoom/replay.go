package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/elektrokombinacija/mapzoom/internal/replay"
)

func newReplayCommand(g *globals) *cobra.Command {
	var (
		quiet    bool
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>...",
		Short: "Replay one or more gesture scripts",
		Long: `Replay gesture scripts on independent cameras. Scripts run concurrently;
their output is printed in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs := make([]bytes.Buffer, len(args))

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(max(parallel, 1))
			for i, path := range args {
				eg.Go(func() error {
					s, err := replay.LoadFile(path)
					if err != nil {
						return err
					}
					res, err := g.replay(ctx, s)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					if len(args) > 1 {
						fmt.Fprintf(&outputs[i], "== %s\n", path)
					}
					printResult(&outputs[i], res, quiet)
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			for i := range outputs {
				if _, err := outputs[i].WriteTo(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final frame")
	cmd.Flags().IntVarP(&parallel, "parallel", "j", 4, "Maximum scripts replayed at once")
	return cmd
}
