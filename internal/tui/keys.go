package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Add     key.Binding
	Refresh key.Binding
	Weekly  key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add entry"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Weekly: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle daily/weekly streak"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Weekly, k.Refresh, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Add, k.Weekly}, {k.Refresh, k.Quit}}
}
