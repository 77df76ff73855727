package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the global key bindings. The Toggle help text is rewritten
// on every mode change so it always names the mode it switches to.
type keyMap struct {
	Toggle  key.Binding
	Account key.Binding
	SignIn  key.Binding
	Refresh key.Binding
	Invoke  key.Binding
	Save    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "24-hour"),
		),
		Account: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch page"),
		),
		SignIn: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sign in/out"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Invoke: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "invoke model"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save preference"),
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
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Account, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Account},
		{k.SignIn, k.Refresh, k.Invoke, k.Save},
		{k.Help, k.Quit},
	}
}
