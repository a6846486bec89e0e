package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	newTask    key.Binding
	edit       key.Binding
	delete     key.Binding
	toggle     key.Binding
	refresh    key.Binding
	filter     key.Binding
	today      key.Binding
	copy       key.Binding
	addStep    key.Binding
	toggleStep key.Binding
	removeStep key.Binding
	moveUp     key.Binding
	moveDn     key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	logout:     key.NewBinding(key.WithKeys("l")),
	newTask:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("ctrl+d")),
	toggle:     key.NewBinding(key.WithKeys("t")),
	refresh:    key.NewBinding(key.WithKeys("s")),
	filter:     key.NewBinding(key.WithKeys("f")),
	today:      key.NewBinding(key.WithKeys("o")),
	copy:       key.NewBinding(key.WithKeys("c")),
	addStep:    key.NewBinding(key.WithKeys("a")),
	toggleStep: key.NewBinding(key.WithKeys(" ")),
	removeStep: key.NewBinding(key.WithKeys("backspace")),
	moveUp:     key.NewBinding(key.WithKeys("[")),
	moveDn:     key.NewBinding(key.WithKeys("]")),
}
