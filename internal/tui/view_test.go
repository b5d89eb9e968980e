package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tiles/internal/config"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/nikbrunner/tiles/internal/tui"
	"github.com/nikbrunner/tiles/internal/tui/layout"
)

// createTestApp creates a test app with fixed dimensions.
func createTestApp(width, height int) tui.App {
	cfg := layout.DefaultConfig()
	app := tui.NewApp(tui.AppParams{
		Config:       config.DefaultConfig(),
		LayoutConfig: &cfg,
		Clipboard:    func(string) error { return nil },
	})

	// Set fixed dimensions for consistent output
	return app.WithDimensions(width, height)
}

func TestView_NormalMode_80x24(t *testing.T) {
	app := createTestApp(80, 24)
	output := layout.StripANSI(app.View())
	lines := strings.Split(output, "\n")

	if len(lines) != 24 {
		t.Errorf("expected 24 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "double-vert") || !strings.Contains(lines[0], "2 frames") || !strings.Contains(lines[0], "80x21") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], " AAPL ") || !strings.Contains(lines[1], " MSFT ") {
		t.Errorf("expected pane titles on the first canvas row, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "║") {
		t.Error("expected the vertical separator on the canvas")
	}
	if !strings.Contains(output, "next preset") {
		t.Error("expected key help")
	}
}

func TestView_TooSmall(t *testing.T) {
	app := createTestApp(10, 6)
	output := layout.StripANSI(app.View())

	if !strings.Contains(output, "too small") {
		t.Errorf("expected too small notice, got:\n%s", output)
	}
}

func TestView_DragHints(t *testing.T) {
	app := createTestApp(80, 24)
	updated, _ := app.Update(tea.MouseMsg{X: 40, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	app = updated.(tui.App)

	output := layout.StripANSI(app.View())
	if !strings.Contains(output, "drag resize vsep 1") || !strings.Contains(output, "release commit") {
		t.Errorf("expected drag hints, got:\n%s", output)
	}
	if strings.Contains(output, "next preset") {
		t.Error("drag hints should replace key help")
	}
}

func TestView_PickerOverlay(t *testing.T) {
	app := createTestApp(100, 30)
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	app = updated.(tui.App)

	output := layout.StripANSI(app.View())
	if !strings.Contains(output, "Presets (17)") {
		t.Errorf("expected picker header, got:\n%s", output)
	}
	if strings.Contains(output, "2 frames") {
		t.Error("picker overlay should replace the canvas")
	}
}

func TestView_MessageLine(t *testing.T) {
	app := createTestApp(80, 24)
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	app = updated.(tui.App)

	output := layout.StripANSI(app.View())
	if !strings.Contains(output, "✓ geometry yanked") {
		t.Errorf("expected success message, got:\n%s", output)
	}
}

func TestView_EveryPresetRenders(t *testing.T) {
	for _, p := range tiling.Presets() {
		t.Run(p.String(), func(t *testing.T) {
			app := tui.NewApp(tui.AppParams{Config: config.DefaultConfig(), Preset: &p}).WithDimensions(120, 40)
			lines := strings.Split(layout.StripANSI(app.View()), "\n")
			if len(lines) != 40 {
				t.Errorf("expected 40 lines, got %d", len(lines))
			}
			for i, line := range lines {
				if w := layout.VisibleWidth(line); w > 120 {
					t.Errorf("line %d is %d cells wide", i, w)
				}
			}
		})
	}
}
