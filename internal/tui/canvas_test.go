package tui

import (
	"strings"
	"testing"

	"github.com/nikbrunner/tiles/internal/config"
	"github.com/nikbrunner/tiles/internal/model"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/nikbrunner/tiles/internal/tui/layout"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/golden"
)

func canvasApp(preset tiling.Preset, symbols []string, width, height int) App {
	return NewApp(AppParams{
		Config:    config.DefaultConfig(),
		Preset:    &preset,
		Workspace: model.NewWorkspace(symbols),
	}).WithDimensions(width, height)
}

func TestCanvas_DoubleVertGolden(t *testing.T) {
	// 11 rows leave an 8-row canvas under the chrome.
	app := canvasApp(tiling.DoubleVert, []string{"AAPL", "MSFT"}, 30, 11)

	golden.Assert(t, layout.StripANSI(app.renderCanvas()), "golden/canvas_double_vert_30x8.golden")
}

func TestCanvas_ActiveFrameUsesThickBorder(t *testing.T) {
	app := canvasApp(tiling.DoubleVert, []string{"AAPL", "MSFT"}, 30, 11)
	app.workspace.SetActive(1, 2)

	first := strings.Split(layout.StripANSI(app.renderCanvas()), "\n")[0]

	assert.Assert(t, strings.HasPrefix(first, "┌ AAPL "), first)
	assert.Assert(t, strings.HasSuffix(first, "━━━━━━┓"), first)
}

func TestCanvas_WideTitle(t *testing.T) {
	app := canvasApp(tiling.Single, []string{"日本株"}, 20, 11)

	first := strings.Split(layout.StripANSI(app.renderCanvas()), "\n")[0]

	assert.Equal(t, first, "┏ 日本株 ━━━━━━━━━━┓")
	assert.Equal(t, layout.VisibleWidth(first), 20)
}

func TestCanvas_LongTitleTruncates(t *testing.T) {
	app := canvasApp(tiling.Single, []string{"A VERY LONG PANE TITLE"}, 14, 11)

	first := strings.Split(layout.StripANSI(app.renderCanvas()), "\n")[0]

	assert.Equal(t, first, "┏ A VERY ... ┓")
}

func TestCanvas_SmallestCanvas(t *testing.T) {
	app := canvasApp(tiling.QuadSqV, []string{"A", "B", "C", "D"}, 12, 7)

	lines := strings.Split(layout.StripANSI(app.renderCanvas()), "\n")

	assert.Equal(t, len(lines), 4)
	for i, line := range lines {
		assert.Equal(t, layout.VisibleWidth(line), 12, "row %d: %q", i, line)
	}
}

func TestGrid_WideRuneClipsAtLimit(t *testing.T) {
	g := newGrid(3, 1)
	g.text(0, 0, 3, "a日本", classText)

	assert.Equal(t, g.render(nil), "a日")
}
