package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/tiles/internal/tui/layout"
)

// renderView creates the complete host view.
func (a App) renderView() string {
	if a.mode == ModePicker {
		return a.renderOverlay()
	}

	chrome := a.layoutConfig.Chrome
	size := a.host.size

	var canvas string
	if size.Fits(chrome) {
		canvas = a.renderCanvas()
	} else {
		notice := a.styles.Empty.Render(fmt.Sprintf("terminal too small (need %dx%d)",
			chrome.MinCanvasWidth, chrome.MinCanvasHeight+chrome.HeaderHeight+chrome.StatusHeight+chrome.HelpHeight))
		canvas = lipgloss.Place(size.Width, size.Height, lipgloss.Center, lipgloss.Center, notice)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		canvas,
		a.renderMessageLine(),
		a.renderHelpBar(),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the preset line above the canvas.
func (a App) renderHeader() string {
	topo := a.host.topo
	parts := []string{
		"tiles",
		a.preset.String(),
		fmt.Sprintf("%d frames", len(topo.Frames())),
		fmt.Sprintf("%dx%d", a.host.size.Width, a.host.size.Height),
	}
	if pane := a.workspace.ActivePane(); pane != nil {
		parts = append(parts, "["+pane.Title()+"]")
	}

	header, _ := layout.TruncateText(strings.Join(parts, "  "), a.width, a.layoutConfig.Text)
	return a.styles.Header.Render(header)
}

// renderHelpBar shows contextual hints while a drag or the picker owns
// input, and the key help otherwise.
func (a App) renderHelpBar() string {
	if hints := a.getContextualHints(); hints != nil {
		return a.renderHintsInline(hints)
	}
	return a.help.View(a.keys)
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	if a.messageText == "" {
		return ""
	}

	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
		prefix = ""
	}

	line, _ := layout.TruncateText(prefix+a.messageText, a.width, a.layoutConfig.Text)
	return msgStyle.Render(line)
}

// renderOverlay renders the preset picker centred over the terminal.
func (a App) renderOverlay() string {
	width, _ := a.layoutConfig.Overlay.Size(a.width, a.height)

	// Width includes the horizontal padding around picker rows.
	box := a.styles.Overlay.Width(width + 2).Render(a.picker.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}
