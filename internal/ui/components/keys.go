package components

import "charm.land/bubbles/v2/key"

// NavKeyMap holds the bindings shared by list-like components.
type NavKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// NavKeys are the default navigation bindings.
var NavKeys = NavKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Subir"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Bajar"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Elegir"),
	),
}
