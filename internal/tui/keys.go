package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next    key.Binding
	prev    key.Binding
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	remove  key.Binding
	submit  key.Binding
	abandon key.Binding
	copy    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	next:    key.NewBinding(key.WithKeys("tab")),
	prev:    key.NewBinding(key.WithKeys("shift+tab")),
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	remove:  key.NewBinding(key.WithKeys("ctrl+d", "delete")),
	submit:  key.NewBinding(key.WithKeys("ctrl+u")),
	abandon: key.NewBinding(key.WithKeys("esc")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
}
