package cli

import (
	"fmt"
	"os"

	"github.com/nikbrunner/tiles/internal/exporter"
	"github.com/nikbrunner/tiles/internal/model"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var size sizeFlags
	var output string
	var active int

	cmd := &cobra.Command{
		Use:   "export PRESET",
		Short: "Write an HTML snapshot of a preset",
		Long: `Export resolves PRESET and writes it as a standalone HTML document with one
absolutely positioned element per section. Frames are titled with the
configured panes. Without -o the file goes to ~/Downloads.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			preset, err := resolvePreset(args[0])
			if err != nil {
				return err
			}
			topo, width, height, err := size.resolve(cmd, preset)
			if err != nil {
				return err
			}

			if output == "" {
				output, err = exporter.DefaultExportPath(preset)
				if err != nil {
					return fmt.Errorf("default export path: %w", err)
				}
			}

			ws := model.NewWorkspace(cfg.Panes)
			frames := len(topo.Frames())
			ws.SetActive(active, frames)

			params := exporter.ExportParams{
				Topology: topo,
				Width:    width,
				Height:   height,
				Panes:    ws.Visible(frames),
				Active:   ws.Active,
			}
			if err := exporter.WriteFile(output, params); err != nil {
				return err
			}

			logger.Info("exported snapshot", "preset", preset, "frames", frames, "path", output)
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	size.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().IntVar(&active, "active", 0, "frame slot marked active")
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the geometry stored in an HTML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening snapshot: %w", err)
			}
			defer file.Close()

			snap, err := exporter.ReadSnapshot(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "preset %s %dx%d thickness %d\n", snap.Preset, snap.Width, snap.Height, snap.Thickness)
			for _, s := range snap.Sections {
				marker := " "
				if s.Active {
					marker = "*"
				}
				fmt.Fprintf(out, "%s%2d %-5s top=%d left=%d width=%d height=%d %s\n",
					marker, s.Index, s.Kind, s.Rect.Top, s.Rect.Left, s.Rect.Width, s.Rect.Height, s.Title)
			}

			if p, ok := tiling.ParsePreset(snap.Preset); ok && tiling.NumFrames(p) != len(snap.Frames()) {
				loggerFromContext(cmd.Context()).Warn("frame count does not match preset",
					"preset", snap.Preset, "want", tiling.NumFrames(p), "got", len(snap.Frames()))
			}
			return nil
		},
	}
}
