package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/tiles/internal/search"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/nikbrunner/tiles/internal/tui/layout"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// SelectedMsg is emitted by an embedded picker when a preset is chosen.
type SelectedMsg struct {
	Preset tiling.Preset
}

// CancelledMsg is emitted by an embedded picker when it is dismissed.
type CancelledMsg struct{}

// Picker is a small TUI for choosing a preset, filtered by fuzzy search.
// Standalone pickers quit the program when done; embedded pickers report
// through SelectedMsg and CancelledMsg instead.
type Picker struct {
	input     textinput.Model
	results   []search.SearchResult
	cursor    int
	selected  bool
	cancelled bool
	embedded  bool
	width     int
	height    int
	cfg       layout.LayoutConfig
}

// New creates a standalone Picker pre-filtered by query.
func New(query string) Picker {
	return newPicker(query, false)
}

// NewEmbedded creates a Picker meant to run inside another model.
func NewEmbedded(query string) Picker {
	return newPicker(query, true)
}

func newPicker(query string, embedded bool) Picker {
	cfg := layout.DefaultConfig()

	ti := textinput.New()
	ti.Placeholder = "filter presets"
	ti.Prompt = "> "
	ti.CharLimit = cfg.Input.FilterCharLimit
	ti.Width = cfg.Input.FilterWidth
	ti.SetValue(query)
	ti.Focus()

	p := Picker{
		input:    ti,
		embedded: embedded,
		width:    80,
		height:   24,
		cfg:      cfg,
	}
	p.filter()
	return p
}

// filter recomputes results from the input. An empty query lists every preset.
func (p *Picker) filter() {
	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		p.results = make([]search.SearchResult, 0, len(tiling.Presets()))
		for _, preset := range tiling.Presets() {
			p.results = append(p.results, search.SearchResult{Preset: preset})
		}
	} else {
		p.results = search.FuzzySearchPresets(query)
	}
	if p.cursor >= len(p.results) {
		p.cursor = len(p.results) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, p.done(CancelledMsg{})

		case tea.KeyEnter:
			if len(p.results) == 0 {
				return p, nil
			}
			p.selected = true
			return p, p.done(SelectedMsg{Preset: p.results[p.cursor].Preset})

		case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}
			return p, nil

		case tea.KeyUp, tea.KeyCtrlP, tea.KeyShiftTab:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.cursor = 0
		p.filter()
	}
	return p, cmd
}

func (p Picker) done(msg tea.Msg) tea.Cmd {
	if !p.embedded {
		return tea.Quit
	}
	return func() tea.Msg { return msg }
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder
	width, rows := p.cfg.Overlay.Size(p.width, p.height)

	b.WriteString(headerStyle.Render(fmt.Sprintf("Presets (%d)", len(p.results))))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.results) == 0 {
		b.WriteString(descStyle.Render("  no matching preset"))
		b.WriteString("\n")
	}

	start, end := layout.CalculateVisibleListItems(rows, p.cursor, len(p.results))
	for i := start; i < end; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		name := highlight(result.Preset.String(), result.MatchedIndexes, style)
		row := fmt.Sprintf("%s%s %s", cursor, name, descStyle.Render(fmt.Sprintf("(%d) %s", tiling.NumFrames(result.Preset), result.Preset.Description())))
		b.WriteString(layout.TruncateANSIAware(row, width, p.cfg.Text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓: move  Enter: choose  Esc: cancel"))

	return b.String()
}

// highlight renders name with the fuzzy-matched bytes emphasised.
func highlight(name string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(name)
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range name {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// SelectedPreset returns the chosen preset and true, or false if the picker
// was cancelled or nothing was chosen.
func (p Picker) SelectedPreset() (tiling.Preset, bool) {
	if p.cancelled || !p.selected || p.cursor >= len(p.results) {
		return tiling.Single, false
	}
	return p.results[p.cursor].Preset, true
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}

// Query returns the current filter text.
func (p Picker) Query() string {
	return p.input.Value()
}
