package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	Frame       lipgloss.Style // inactive frame border
	FrameActive lipgloss.Style // active frame border
	Title       lipgloss.Style // frame title on the top border
	TitleActive lipgloss.Style
	Text        lipgloss.Style // frame body text
	Separator   lipgloss.Style
	Dragging    lipgloss.Style // separator being dragged
	Header      lipgloss.Style
	Empty       lipgloss.Style
	Overlay     lipgloss.Style
	HintKey     lipgloss.Style // Key portion of hints (e.g., "Esc")
	HintDesc    lipgloss.Style // Description portion of hints (e.g., "cancel")

	FrameBorder       lipgloss.Border
	FrameActiveBorder lipgloss.Border
	VerticalRune      rune
	HorizontalRune    rune
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders

	return Styles{
		Frame: lipgloss.NewStyle().
			Foreground(border),

		FrameActive: lipgloss.NewStyle().
			Foreground(accent),

		Title: lipgloss.NewStyle().
			Foreground(primary),

		TitleActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Text: lipgloss.NewStyle().
			Foreground(subtle),

		Separator: lipgloss.NewStyle().
			Foreground(border),

		Dragging: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		FrameBorder:       lipgloss.NormalBorder(),
		FrameActiveBorder: lipgloss.ThickBorder(),
		VerticalRune:      '║',
		HorizontalRune:    '═',
	}
}
