package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/nikbrunner/tiles/internal/tui/layout"
)

type cellClass int

const (
	classBlank cellClass = iota
	classFrame
	classFrameActive
	classTitle
	classTitleActive
	classText
	classSeparator
	classDragging
)

// cell is one terminal cell. A zero rune marks the trailing half of a wide
// rune drawn in the cell before it.
type cell struct {
	r     rune
	class cellClass
}

type grid struct {
	width  int
	height int
	cells  [][]cell
}

func newGrid(width, height int) grid {
	g := grid{width: width, height: height, cells: make([][]cell, height)}
	for y := range g.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		g.cells[y] = row
	}
	return g
}

func (g grid) set(x, y int, r rune, class cellClass) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y][x] = cell{r: r, class: class}
}

func (g grid) fill(r tiling.Rect, ch rune, class cellClass) {
	for y := r.Top; y < r.Bottom(); y++ {
		for x := r.Left; x < r.Right(); x++ {
			g.set(x, y, ch, class)
		}
	}
}

// text writes s from (x, y), stopping before a rune would cross limit.
func (g grid) text(x, y, limit int, s string, class cellClass) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			return
		}
		g.set(x, y, r, class)
		for k := 1; k < w; k++ {
			g.set(x+k, y, 0, class)
		}
		x += w
	}
}

func (g grid) box(r tiling.Rect, b lipgloss.Border, class cellClass) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.Left + 1; x < right; x++ {
		g.set(x, r.Top, firstRune(b.Top), class)
		g.set(x, bottom, firstRune(b.Bottom), class)
	}
	for y := r.Top + 1; y < bottom; y++ {
		g.set(r.Left, y, firstRune(b.Left), class)
		g.set(right, y, firstRune(b.Right), class)
	}
	g.set(r.Left, r.Top, firstRune(b.TopLeft), class)
	g.set(right, r.Top, firstRune(b.TopRight), class)
	g.set(r.Left, bottom, firstRune(b.BottomLeft), class)
	g.set(right, bottom, firstRune(b.BottomRight), class)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// render joins each row into runs of equally classed cells and styles them.
func (g grid) render(styles map[cellClass]lipgloss.Style) string {
	lines := make([]string, g.height)
	for y, row := range g.cells {
		var line, run strings.Builder
		class := classBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := styles[class]; ok {
				line.WriteString(st.Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range row {
			if c.class != class {
				flush()
				class = c.class
			}
			if c.r != 0 {
				run.WriteRune(c.r)
			}
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// renderCanvas draws the resolved topology: boxed frames titled with their
// pane and annotated with size and flex, separators as double rules.
func (a App) renderCanvas() string {
	size := a.host.size
	topo := a.host.topo
	g := newGrid(size.Width, size.Height)

	panes := a.workspace.Visible(len(topo.Frames()))
	dragged := -1
	if a.host.resizer.Dragging() {
		dragged = a.host.resizer.Separator()
	}

	slot := 0
	for i, s := range topo.Sections {
		r := s.Rect
		if s.IsSeparator() {
			ch := a.styles.HorizontalRune
			if s.Orientation == tiling.Vertical {
				ch = a.styles.VerticalRune
			}
			class := classSeparator
			if i == dragged {
				class = classDragging
			}
			g.fill(r, ch, class)
			continue
		}

		title := ""
		if slot < len(panes) {
			title = panes[slot].Title()
		}
		a.drawFrame(g, s, title, slot == a.workspace.Active)
		slot++
	}

	return g.render(map[cellClass]lipgloss.Style{
		classFrame:       a.styles.Frame,
		classFrameActive: a.styles.FrameActive,
		classTitle:       a.styles.Title,
		classTitleActive: a.styles.TitleActive,
		classText:        a.styles.Text,
		classSeparator:   a.styles.Separator,
		classDragging:    a.styles.Dragging,
	})
}

func (a App) drawFrame(g grid, s tiling.Section, title string, active bool) {
	r := s.Rect
	if r.Width < 2 || r.Height < 2 {
		return
	}

	border, class, titleClass := a.styles.FrameBorder, classFrame, classTitle
	if active {
		border, class, titleClass = a.styles.FrameActiveBorder, classFrameActive, classTitleActive
	}
	g.box(r, border, class)

	if r.Width >= 5 {
		t, _ := layout.TruncateWithPrefixSuffix(title, r.Width-2, " ", " ", a.layoutConfig.Text)
		g.text(r.Left+1, r.Top, r.Right()-1, t, titleClass)
	}

	inner := r.Height - 2
	lines := []string{
		fmt.Sprintf("%dx%d", r.Width, r.Height),
		fmt.Sprintf("%.0f%% x %.0f%%", s.FlexWidth*100, s.FlexHeight*100),
	}
	if len(lines) > inner {
		lines = lines[:inner]
	}
	top := r.Top + 1 + (inner-len(lines))/2
	for n, line := range lines {
		g.text(r.Left+1, top+n, r.Right()-1, layout.CenterText(line, r.Width-2, a.layoutConfig.Text), classText)
	}
}
