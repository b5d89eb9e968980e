package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/nikbrunner/tiles/internal/config"
	"github.com/nikbrunner/tiles/internal/search"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/nikbrunner/tiles/internal/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose    bool
	configPath string
}

// Execute runs the tiles CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts globalOptions
	var presetName string

	root := &cobra.Command{
		Use:           "tiles",
		Short:         "Fixed-preset tiling layouts with draggable separators",
		Long:          `tiles lays panes out in one of a fixed catalog of tiling presets and lets you resize them by dragging the separators with the mouse.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if len(cfg.Sources) > 0 {
				logger.Debug("loaded config", "sources", cfg.Sources)
			}

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(cmd.Context(), presetName, opts.verbose)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("tiles %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file layered over the user and project files")
	root.Flags().StringVarP(&presetName, "preset", "p", "", "preset to open with (name, alias or fuzzy query)")

	root.AddCommand(newPickCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newGeometryCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// resolvePreset maps a name, alias or fuzzy query to a preset.
func resolvePreset(query string) (tiling.Preset, error) {
	p, ok := search.Resolve(query)
	if !ok {
		return tiling.Single, fmt.Errorf("%w: %q", config.ErrUnknownPreset, query)
	}
	return p, nil
}

// runHost runs the interactive layout host until the user quits.
func runHost(ctx context.Context, presetName string, verbose bool) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	preset := cfg.Preset()
	if presetName != "" {
		p, err := resolvePreset(presetName)
		if err != nil {
			return err
		}
		preset = p
	}

	hostLog, closeLog, err := openHostLog(cfg, verbose)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			logger.Warn("closing host log", "err", err)
		}
	}()

	hostLog.Info("starting host", "preset", preset, "thickness", cfg.SeparatorThickness)
	app := tui.NewApp(tui.AppParams{
		Config: cfg,
		Preset: &preset,
		Logger: hostLog,
	})

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running host: %w", err)
	}

	if app, ok := final.(tui.App); ok {
		hostLog.Info("host closed", "preset", app.Preset())
	}
	return nil
}
