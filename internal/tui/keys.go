package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit    key.Binding
	clear     key.Binding
	copy      key.Binding
	buildInfo key.Binding
	help      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "validate")),
		clear:     key.NewBinding(key.WithKeys("ctrl+l", "esc"), key.WithHelp("ctrl+l/esc", "clear")),
		copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy number")),
		buildInfo: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "about")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.clear, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.clear, k.copy},
		{k.buildInfo, k.help, k.quit},
	}
}
