package shared

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notesapp/internal/tui/messages"
)

// TextDialogModel is a modal multi-line text prompt seeded with an initial value.
// It reports its outcome as a messages.TextDialogResultMsg.
type TextDialogModel struct {
	Title  string
	Prompt string
	Input  textarea.Model
	Width  int
	Height int
}

// NewTextDialog creates a focused text dialog.
func NewTextDialog(title, prompt, initial string) *TextDialogModel {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetWidth(52)
	ta.SetHeight(5)
	ta.SetValue(initial)
	ta.Focus()

	return &TextDialogModel{
		Title:  title,
		Prompt: prompt,
		Input:  ta,
	}
}

// Init implements tea.Model
func (m *TextDialogModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m *TextDialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+s":
			value := m.Input.Value()
			return m, func() tea.Msg {
				return messages.TextDialogResultMsg{Value: value, OK: true}
			}
		case "esc":
			return m, func() tea.Msg {
				return messages.TextDialogResultMsg{OK: false}
			}
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *TextDialogModel) View() string {
	content := dialogTitleStyle.Render(m.Title) + "\n\n"
	content += dialogPromptStyle.Render(m.Prompt) + "\n"
	content += m.Input.View() + "\n\n"
	content += dialogHelpStyle.Render("[ctrl+s] ok  [esc] cancel")

	box := dialogBoxStyle.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

// Value returns the current text
func (m *TextDialogModel) Value() string {
	return m.Input.Value()
}

// SetSize sets the area the dialog is centered in
func (m *TextDialogModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}
