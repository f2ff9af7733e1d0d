package main

import (
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/mapzoom/internal/replay"
)

func newScenarioCommand(g *globals) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run the built-in wheel, drag, offset and reset scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := g.replay(cmd.Context(), replay.WheelScenario())
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res, quiet)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final frame")
	return cmd
}
