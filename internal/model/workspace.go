package model

// Workspace holds every pane the host knows about, in slot order, and which
// slot is active.
type Workspace struct {
	Panes  []Pane `json:"panes"`
	Active int    `json:"active"`
}

// NewWorkspace creates a Workspace with one pane per symbol.
func NewWorkspace(symbols []string) *Workspace {
	ws := &Workspace{Panes: []Pane{}}
	for _, s := range symbols {
		ws.Panes = append(ws.Panes, NewPane(NewPaneParams{Symbol: s}))
	}
	return ws
}

// EnsurePanes allocates placeholder panes until at least n exist and returns
// how many were added. Existing panes are never removed, so shrinking to a
// smaller preset and growing back restores the same content.
func (w *Workspace) EnsurePanes(n int) int {
	added := 0
	for len(w.Panes) < n {
		w.Panes = append(w.Panes, NewPlaceholder(len(w.Panes)))
		added++
	}
	return added
}

// Visible returns the panes homed in the first n frame slots.
func (w *Workspace) Visible(n int) []Pane {
	w.EnsurePanes(n)
	return w.Panes[:n]
}

// SetActive activates slot, clamped to [0, frames).
func (w *Workspace) SetActive(slot, frames int) {
	w.Active = clampSlot(slot, frames)
}

// CycleActive moves the active slot forward by delta, wrapping within frames.
func (w *Workspace) CycleActive(delta, frames int) {
	if frames <= 0 {
		w.Active = 0
		return
	}
	w.Active = ((w.Active+delta)%frames + frames) % frames
}

// Clamp keeps the active slot inside a topology with the given frame count.
func (w *Workspace) Clamp(frames int) {
	w.Active = clampSlot(w.Active, frames)
}

// ActivePane returns the pane in the active slot, or nil if there is none.
func (w *Workspace) ActivePane() *Pane {
	if w.Active < 0 || w.Active >= len(w.Panes) {
		return nil
	}
	return &w.Panes[w.Active]
}

func clampSlot(slot, frames int) int {
	if slot >= frames {
		slot = frames - 1
	}
	if slot < 0 {
		slot = 0
	}
	return slot
}
