package shared

import (
	"github.com/charmbracelet/lipgloss"

	"notesapp/internal/tui/theme"
)

var (
	dialogBoxStyle = theme.ModalBox.Width(60)

	dialogTitleStyle  = theme.ModalTitle
	dialogPromptStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	dialogErrorStyle  = lipgloss.NewStyle().Foreground(theme.Danger)
	dialogHelpStyle   = theme.ModalHelp

	pickerSegmentStyle = lipgloss.NewStyle().Foreground(theme.Text)

	pickerCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("3")).
				Foreground(lipgloss.Color("0")).
				Bold(true)

	pickerExamplesStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Italic(true)

	swatchCursorStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(theme.Warning)

	swatchStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder())
)
