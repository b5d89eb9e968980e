package tui

import (
	"fmt"
	"strings"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "drag")
	Desc string // Short description (e.g., "commit")
}

// renderHintsInline renders hints in inline format: "drag resize vsep 1  release commit"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// getContextualHints returns hints that replace the help bar while a
// separator drag owns the pointer. It returns nil otherwise.
func (a App) getContextualHints() []Hint {
	if !a.host.resizer.Dragging() {
		return nil
	}
	sep := a.host.resizer.Separator()
	return []Hint{
		{Key: "drag", Desc: fmt.Sprintf("resize %s %d", a.host.topo.Sections[sep].Label(), sep)},
		{Key: "release", Desc: "commit"},
	}
}
