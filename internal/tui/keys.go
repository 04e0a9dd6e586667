package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	toggle   key.Binding
	submit   key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	all      key.Binding
	search   key.Binding
	category key.Binding
	sort     key.Binding
	upvote   key.Binding
	delete   key.Binding
	copy     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	submit:   key.NewBinding(key.WithKeys("ctrl+s")),
	quit:     key.NewBinding(key.WithKeys("q")),
	logout:   key.NewBinding(key.WithKeys("o")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	all:      key.NewBinding(key.WithKeys("a")),
	search:   key.NewBinding(key.WithKeys("/")),
	category: key.NewBinding(key.WithKeys("c")),
	sort:     key.NewBinding(key.WithKeys("s")),
	upvote:   key.NewBinding(key.WithKeys("u")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
