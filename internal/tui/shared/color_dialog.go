package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notesapp/internal/config"
	"notesapp/internal/notes"
	"notesapp/internal/tui/messages"
)

const swatchesPerRow = 4

// ColorDialogModel is a modal color chooser: a grid of palette swatches plus
// free hex entry. It reports its outcome as a messages.ColorDialogResultMsg.
type ColorDialogModel struct {
	swatches []config.NamedColor
	cursor   int
	hexMode  bool
	hexInput textinput.Model
	current  notes.Color
	err      string
	Width    int
	Height   int
}

// NewColorDialog creates a chooser over swatches with the cursor on current
// when it is part of the palette.
func NewColorDialog(swatches []config.NamedColor, current notes.Color) *ColorDialogModel {
	ti := textinput.New()
	ti.Placeholder = "#rrggbb"
	ti.CharLimit = 7
	ti.Width = 10

	m := &ColorDialogModel{
		swatches: swatches,
		hexInput: ti,
		current:  current,
	}
	for i, s := range swatches {
		if s.Color == current {
			m.cursor = i
			break
		}
	}
	if len(swatches) == 0 {
		m.openHex()
	}
	return m
}

// Init implements tea.Model
func (m *ColorDialogModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *ColorDialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.hexMode {
		return m.updateHex(keyMsg)
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, cancelColor
	case "enter", " ":
		if m.cursor < len(m.swatches) {
			return m, chooseColor(m.swatches[m.cursor].Color)
		}
	case "h", "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "l", "right":
		if m.cursor < len(m.swatches)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor-swatchesPerRow >= 0 {
			m.cursor -= swatchesPerRow
		}
	case "j", "down":
		if m.cursor+swatchesPerRow < len(m.swatches) {
			m.cursor += swatchesPerRow
		}
	case "i", "#":
		return m, m.openHex()
	}
	return m, nil
}

func (m *ColorDialogModel) openHex() tea.Cmd {
	m.hexMode = true
	m.err = ""
	m.hexInput.SetValue(m.current.Hex())
	m.hexInput.CursorEnd()
	return m.hexInput.Focus()
}

func (m *ColorDialogModel) updateHex(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if len(m.swatches) == 0 {
			return m, cancelColor
		}
		m.hexMode = false
		m.err = ""
		m.hexInput.Blur()
		return m, nil
	case "enter":
		c, err := notes.ParseColor(m.hexInput.Value())
		if err != nil {
			m.err = "invalid color, use #rrggbb"
			return m, nil
		}
		return m, chooseColor(c)
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	m.err = ""
	return m, cmd
}

func chooseColor(c notes.Color) tea.Cmd {
	return func() tea.Msg {
		return messages.ColorDialogResultMsg{Color: c, Valid: true}
	}
}

func cancelColor() tea.Msg {
	return messages.ColorDialogResultMsg{Valid: false}
}

// View implements tea.Model
func (m *ColorDialogModel) View() string {
	var s strings.Builder
	s.WriteString(dialogTitleStyle.Render("Choose Color"))
	s.WriteString("\n\n")

	var rows []string
	var row []string
	for i, sw := range m.swatches {
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(sw.Color.Hex())).
			Foreground(lipgloss.Color(sw.Color.Contrast().Hex())).
			Width(10).
			Align(lipgloss.Center).
			Render(sw.Name)
		if !m.hexMode && i == m.cursor {
			chip = swatchCursorStyle.Render(chip)
		} else {
			chip = swatchStyle.Render(chip)
		}
		row = append(row, chip)
		if len(row) == swatchesPerRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	if len(rows) > 0 {
		s.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
		s.WriteString("\n\n")
	}

	if m.hexMode {
		s.WriteString(dialogPromptStyle.Render("Hex: "))
		s.WriteString(m.hexInput.View())
		s.WriteString("\n")
		if m.err != "" {
			s.WriteString(dialogErrorStyle.Render("Error: " + m.err))
			s.WriteString("\n")
		}
		s.WriteString("\n")
		s.WriteString(dialogHelpStyle.Render("[enter] ok  [esc] back"))
	} else {
		s.WriteString(dialogHelpStyle.Render("hjkl/arrows: move • i: hex • enter: ok • esc: cancel"))
	}

	box := dialogBoxStyle.Render(s.String())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

// Cursor returns the highlighted swatch index
func (m *ColorDialogModel) Cursor() int {
	return m.cursor
}

// SetSize sets the area the dialog is centered in
func (m *ColorDialogModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}
