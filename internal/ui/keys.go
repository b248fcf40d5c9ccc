package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Refresh    key.Binding

	// Tab switching
	NextTab     key.Binding
	PrevTab     key.Binding
	Recipes     key.Binding
	People      key.Binding
	Countries   key.Binding
	Ingredients key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding
	Open key.Binding

	// Actions
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	MarkCooked key.Binding
	AddLink    key.Binding
	DropLink   key.Binding

	// Form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	AddDraft  key.Binding

	// Confirm
	Yes key.Binding
	No  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		CycleTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),

		NextTab:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
		Recipes:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "recipes")),
		People:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "people")),
		Countries:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "countries")),
		Ingredients: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "ingredients")),

		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),

		New:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		MarkCooked: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cooked")),
		AddLink:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "add ingredient")),
		DropLink:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove ingredient")),

		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "save")),
		AddDraft:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add ingredient row")),

		Yes: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
		No:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	}
}
