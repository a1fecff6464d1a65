package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"notesapp/internal/notes"
)

// Gesture identifies one of the four buttons of the window
type Gesture int

const (
	GestureAdd Gesture = iota
	GestureEdit
	GestureDelete
	GestureChooseColor
)

func (g Gesture) String() string {
	switch g {
	case GestureAdd:
		return "add"
	case GestureEdit:
		return "edit"
	case GestureDelete:
		return "delete"
	case GestureChooseColor:
		return "choose-color"
	}
	return "unknown"
}

// ButtonMsg is sent when a button is pressed
type ButtonMsg struct {
	Gesture Gesture
}

// RowClickMsg is sent when a list row is clicked
type RowClickMsg struct {
	Index int
}

// TextDialogResultMsg is sent when the modal text dialog closes
type TextDialogResultMsg struct {
	Value string
	OK    bool
}

// ColorDialogResultMsg is sent when the modal color chooser closes
type ColorDialogResultMsg struct {
	Color notes.Color
	Valid bool
}

// Press returns a command that emits a ButtonMsg
func Press(g Gesture) tea.Cmd {
	return func() tea.Msg {
		return ButtonMsg{Gesture: g}
	}
}

// ClickRow returns a command that emits a RowClickMsg
func ClickRow(index int) tea.Cmd {
	return func() tea.Msg {
		return RowClickMsg{Index: index}
	}
}
