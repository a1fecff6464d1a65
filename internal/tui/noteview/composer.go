package noteview

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notesapp/internal/tui/shared"
	"notesapp/internal/tui/theme"
)

// ComposerField is the part of the composition area that has focus
type ComposerField int

const (
	FieldNone ComposerField = iota
	FieldText
	FieldReminder
)

// ComposerModel is the composition area: the note text and its reminder.
type ComposerModel struct {
	text     textarea.Model
	reminder shared.DateTimePickerModel
	field    ComposerField
	width    int
}

// NewComposer creates a composition area whose reminder starts at now().
func NewComposer(now func() time.Time) ComposerModel {
	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(6)

	return ComposerModel{
		text:     ta,
		reminder: shared.NewDateTimePicker(now),
	}
}

// Text returns the composed note text
func (m ComposerModel) Text() string {
	return m.text.Value()
}

// Reminder returns the reminder picker's current value
func (m ComposerModel) Reminder() time.Time {
	return m.reminder.Value()
}

// Clear empties the note text. The reminder keeps its value.
func (m *ComposerModel) Clear() {
	m.text.Reset()
}

// Field returns the focused field
func (m ComposerModel) Field() ComposerField {
	return m.field
}

// CapturingText reports whether printable keys belong to a text entry.
func (m ComposerModel) CapturingText() bool {
	return m.field == FieldText || (m.field == FieldReminder && m.reminder.InTextEntry())
}

// SetField moves focus within the composer. FieldNone blurs it.
func (m *ComposerModel) SetField(f ComposerField) tea.Cmd {
	m.field = f
	m.reminder.Blur()
	m.text.Blur()

	switch f {
	case FieldText:
		return m.text.Focus()
	case FieldReminder:
		m.reminder.Focus()
	}
	return nil
}

func (m *ComposerModel) SetWidth(width int) {
	m.width = width
	m.text.SetWidth(width)
}

func (m ComposerModel) Update(msg tea.Msg) (ComposerModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.field {
	case FieldText:
		m.text, cmd = m.text.Update(msg)
	case FieldReminder:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			m.reminder, cmd = m.reminder.Update(keyMsg)
		}
	}
	return m, cmd
}

func (m ComposerModel) View() string {
	noteLabel := theme.Label.Render("Take a note:")
	reminderLabel := theme.Label.Render("Set a Reminder:")

	return lipgloss.JoinVertical(lipgloss.Left,
		noteLabel,
		m.text.View(),
		"",
		reminderLabel,
		m.reminder.View(),
	)
}
