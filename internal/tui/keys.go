package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Color     key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Handled by the list widget, except RowSelect which the root model applies
	RowMove   key.Binding
	RowSelect key.Binding
	RowEdit   key.Binding
	RowDelete key.Binding
	RowColor  key.Binding

	// Handled by the reminder picker
	PickerField key.Binding
	PickerStep  key.Binding
	PickerNow   key.Binding
	PickerType  key.Binding
}

var keys = keyMap{
	Add: key.NewBinding(
		key.WithKeys("ctrl+s", "f2"),
		key.WithHelp("ctrl+s / f2", "Add Note"),
	),
	Edit: key.NewBinding(
		key.WithKeys("f3"),
		key.WithHelp("f3", "Edit Note"),
	),
	Delete: key.NewBinding(
		key.WithKeys("f4"),
		key.WithHelp("f4", "Delete Note"),
	),
	Color: key.NewBinding(
		key.WithKeys("f5"),
		key.WithHelp("f5", "Choose Color"),
	),
	NextFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next area"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "Previous area"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1", "?"),
		key.WithHelp("f1 / ?", "Show this help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "Quit (from the list)"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "Quit"),
	),

	RowMove:   key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j / k", "Move cursor")),
	RowSelect: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter / space", "Select note")),
	RowEdit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit selected note")),
	RowDelete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d / x", "Delete selected note")),
	RowColor:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Choose color")),

	PickerField: key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h / l", "Previous / next field")),
	PickerStep:  key.NewBinding(key.WithKeys("k", "j"), key.WithHelp("k / j", "Increase / decrease")),
	PickerNow:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Reset to now")),
	PickerType:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "Type a date and time")),
}
