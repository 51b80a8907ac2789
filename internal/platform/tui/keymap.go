package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for the tycoon screen.
type KeyMap struct {
	Click    key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Buy      key.Binding
	StartRnd key.Binding
	SmallBid key.Binding
	WinBid   key.Binding
	Prestige key.Binding
	Save     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.NextTab, k.Up, k.Down, k.Buy, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Click, k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Buy, k.StartRnd, k.SmallBid, k.WinBid},
		{k.Prestige, k.Save, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Click: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "click"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "select up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "select down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy business"),
		),
		StartRnd: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start auction"),
		),
		SmallBid: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "bid +1K"),
		),
		WinBid: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "bid to lead"),
		),
		Prestige: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "prestige"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyMatches reports whether a key message matches a binding.
func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
