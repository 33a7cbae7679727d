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

	switchPage key.Binding
	signOut    key.Binding

	search   key.Binding
	newNote  key.Binding
	edit     key.Binding
	preview  key.Binding
	rename   key.Binding
	delete   key.Binding
	save     key.Binding
	collapse key.Binding
	copy     key.Binding
	export   key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),

	switchPage: key.NewBinding(key.WithKeys("ctrl+t")),
	signOut:    key.NewBinding(key.WithKeys("ctrl+l")),

	search:   key.NewBinding(key.WithKeys("/")),
	newNote:  key.NewBinding(key.WithKeys("n", "ctrl+n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	preview:  key.NewBinding(key.WithKeys("p")),
	rename:   key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("d")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	collapse: key.NewBinding(key.WithKeys("ctrl+b")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	export:   key.NewBinding(key.WithKeys("ctrl+e")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n")),
}
