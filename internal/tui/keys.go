package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	exit    key.Binding
	add     key.Binding
	list    key.Binding
	remove  key.Binding
	filter  key.Binding
	delete  key.Binding
	copy    key.Binding
	reload  key.Binding
	version key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	exit:    key.NewBinding(key.WithKeys("0", "q")),
	add:     key.NewBinding(key.WithKeys("1")),
	list:    key.NewBinding(key.WithKeys("2")),
	remove:  key.NewBinding(key.WithKeys("3")),
	filter:  key.NewBinding(key.WithKeys("4")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	reload:  key.NewBinding(key.WithKeys("r")),
	version: key.NewBinding(key.WithKeys("v")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
