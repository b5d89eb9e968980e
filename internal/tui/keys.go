package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the layout host.
type KeyMap struct {
	NextPreset key.Binding
	PrevPreset key.Binding
	Picker     key.Binding
	NextFrame  key.Binding
	PrevFrame  key.Binding
	Yank       key.Binding
	Export     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPreset: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next preset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("N", "left"),
			key.WithHelp("N", "prev preset"),
		),
		Picker: key.NewBinding(
			key.WithKeys("p", "/"),
			key.WithHelp("p", "pick preset"),
		),
		NextFrame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next frame"),
		),
		PrevFrame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev frame"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank geometry"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export html"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPreset, k.Picker, k.NextFrame, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPreset, k.PrevPreset, k.Picker},
		{k.NextFrame, k.PrevFrame},
		{k.Yank, k.Export},
		{k.Help, k.Quit},
	}
}
