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
	quit     key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	restore  key.Binding
	copy     key.Binding
	search   key.Binding
	showAll  key.Binding
	retry    key.Binding
	dismiss  key.Binding
	category key.Binding
	submit   key.Binding
	toggle   key.Binding
	clearAll key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	restore:  key.NewBinding(key.WithKeys("u")),
	copy:     key.NewBinding(key.WithKeys("c")),
	search:   key.NewBinding(key.WithKeys("/")),
	showAll:  key.NewBinding(key.WithKeys("a")),
	retry:    key.NewBinding(key.WithKeys("ctrl+r")),
	dismiss:  key.NewBinding(key.WithKeys("x")),
	category: key.NewBinding(key.WithKeys("g")),
	submit:   key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	clearAll: key.NewBinding(key.WithKeys("ctrl+x")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
