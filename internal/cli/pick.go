package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tiles/internal/picker"
	"github.com/nikbrunner/tiles/internal/search"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/spf13/cobra"
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [query...]",
		Short: "Fuzzy-pick a preset and print its name",
		Long: `Pick filters the preset catalog by query. A query that names a preset or
matches exactly one is printed straight away; otherwise an interactive picker
opens. Nothing is printed if the picker is cancelled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			logger := loggerFromContext(cmd.Context())

			if query != "" {
				if p, ok := tiling.ParsePreset(query); ok {
					fmt.Fprintln(cmd.OutOrStdout(), p)
					return nil
				}
				results := search.FuzzySearchPresets(query)
				switch len(results) {
				case 0:
					return fmt.Errorf("no preset matches %q", query)
				case 1:
					// Single result - select it directly
					logger.Debug("picked without prompt", "query", query, "preset", results[0].Preset)
					fmt.Fprintln(cmd.OutOrStdout(), results[0].Preset)
					return nil
				}
			}

			program := tea.NewProgram(picker.New(query), tea.WithContext(cmd.Context()), tea.WithOutput(cmd.ErrOrStderr()))
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("running picker: %w", err)
			}

			p, ok := final.(picker.Picker).SelectedPreset()
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
