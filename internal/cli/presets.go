package cli

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/nikbrunner/tiles/internal/sweep"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/spf13/cobra"
)

var errSweepFailed = errors.New("preset sweep found faults")

func newPresetsCmd() *cobra.Command {
	var check bool
	var concurrency int

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the preset catalog",
		Long: `List every preset with its frame count and description.

With --check, each preset is resolved at a range of container sizes with the
configured separator thickness and checked for rects outside the container or
overlapping frames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !check {
				for _, p := range tiling.Presets() {
					fmt.Fprintf(out, "%-20s %d  %s\n", p, tiling.NumFrames(p), p.Description())
				}
				return nil
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			prog := newProgress(logger)
			results := sweep.CheckPresets(tiling.Presets(), sweep.DefaultSizes, cfg.SeparatorThickness, concurrency,
				func(completed, total int) {
					logger.Debug("sweep", "completed", completed, "total", total)
				})
			prog.done(fmt.Sprintf("Checked %d presets at %d sizes", len(tiling.Presets()), len(sweep.DefaultSizes)))

			failures := sweep.Failures(results)
			for _, r := range failures {
				fmt.Fprintf(out, "%-20s %5dx%-5d %s: %s\n", r.Preset, r.Size.Width, r.Size.Height, r.Status, r.Error)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%w: %d of %d checks", errSweepFailed, len(failures), len(results))
			}
			fmt.Fprintf(out, "all %d checks ok\n", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "resolve every preset at many sizes and report faults")
	cmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "sweep workers")
	return cmd
}
