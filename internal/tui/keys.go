package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	esc   key.Binding
	tab   key.Binding
	copy  key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "pgup")),
	down:  key.NewBinding(key.WithKeys("down", "pgdown")),
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	tab:   key.NewBinding(key.WithKeys("tab", "shift+tab")),
	copy:  key.NewBinding(key.WithKeys("ctrl+y")),
}
