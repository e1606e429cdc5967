package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increase   key.Binding
	Decrease   key.Binding
	ToggleMode key.Binding
	ToggleLang key.Binding
	Clear      key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.ToggleMode, k.ToggleLang, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Increase: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "raise income"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "lower income"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "monthly/yearly"),
	),
	ToggleLang: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "english/বাংলা"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc", "q"),
		key.WithHelp("q", "quit"),
	),
}
