package cli

import (
	"fmt"

	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/spf13/cobra"
)

// sizeFlags are the container flags shared by geometry and export.
type sizeFlags struct {
	width     int
	height    int
	thickness int
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "container width (default from config export.width)")
	cmd.Flags().IntVar(&f.height, "height", 0, "container height (default from config export.height)")
	cmd.Flags().IntVar(&f.thickness, "thickness", tiling.DefaultSeparatorThickness, "separator thickness")
}

// resolve builds preset and resolves it at the flagged size, falling back to
// the configured export size.
func (f *sizeFlags) resolve(cmd *cobra.Command, preset tiling.Preset) (*tiling.Topology, int, int, error) {
	cfg := configFromContext(cmd.Context())
	width, height := f.width, f.height
	if width == 0 {
		width = cfg.Export.Width
	}
	if height == 0 {
		height = cfg.Export.Height
	}
	if width <= 0 || height <= 0 {
		return nil, 0, 0, fmt.Errorf("container must be positive, got %dx%d", width, height)
	}
	if f.thickness <= 0 {
		return nil, 0, 0, fmt.Errorf("thickness must be positive, got %d", f.thickness)
	}

	topo := tiling.Build(preset, nil)
	topo.Thickness = f.thickness
	tiling.Resolve(width, height, topo)
	return topo, width, height, nil
}

func newGeometryCmd() *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "geometry PRESET",
		Short: "Print the resolved rects of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := resolvePreset(args[0])
			if err != nil {
				return err
			}
			topo, width, height, err := size.resolve(cmd, preset)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("resolved", "preset", preset, "width", width, "height", height)

			fmt.Fprint(cmd.OutOrStdout(), tiling.Describe(topo))
			return nil
		},
	}

	size.register(cmd)
	return cmd
}
