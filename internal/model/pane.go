package model

import "fmt"

// Pane is the content a host places into a frame slot. Panes are re-homed by
// index whenever the preset changes, so their identity outlives any topology.
type Pane struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Placeholder bool   `json:"placeholder"` // allocated to fill a slot, not configured
}

// NewPaneParams holds parameters for creating a new Pane.
type NewPaneParams struct {
	Symbol string
}

// NewPane creates a Pane with a generated UUID.
func NewPane(params NewPaneParams) Pane {
	return Pane{
		ID:     generateUUID(),
		Symbol: params.Symbol,
	}
}

// NewPlaceholder creates an anonymous pane for slot n (zero-based).
func NewPlaceholder(n int) Pane {
	return Pane{
		ID:          generateUUID(),
		Symbol:      fmt.Sprintf("pane %d", n+1),
		Placeholder: true,
	}
}

// Title returns the label shown in the pane's frame.
func (p Pane) Title() string {
	if p.Symbol == "" {
		return "untitled"
	}
	return p.Symbol
}
