package noteview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notesapp/internal/notes"
	"notesapp/internal/tui/messages"
	"notesapp/internal/tui/shared"
	"notesapp/internal/tui/theme"
)

const gutterWidth = 2

// ListModel renders presenter rows with their background colors and turns
// keys into row clicks and button presses.
type ListModel struct {
	rows     []Row
	cursor   int
	selected int
	offset   int
	focused  bool
	width    int
	height   int
}

// NewListModel returns an empty list
func NewListModel() ListModel {
	return ListModel{selected: notes.NoSelection}
}

// SetRows replaces every displayed row. The cursor is clamped to the new rows.
func (m *ListModel) SetRows(rows []Row, selected int) {
	m.rows = rows
	m.selected = selected
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// Rows returns the displayed rows
func (m ListModel) Rows() []Row {
	return m.rows
}

// Cursor returns the highlighted row index
func (m ListModel) Cursor() int {
	return m.cursor
}

func (m *ListModel) Focus() {
	m.focused = true
}

func (m *ListModel) Blur() {
	m.focused = false
}

func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

func (m ListModel) Update(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.ensureVisible()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
	case "g", "home":
		m.cursor = 0
		m.ensureVisible()
	case "G", "end":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
			m.ensureVisible()
		}
	case "enter", " ":
		if len(m.rows) > 0 {
			return m, messages.ClickRow(m.cursor)
		}
	case "e":
		return m, messages.Press(messages.GestureEdit)
	case "d", "x", "delete":
		return m, messages.Press(messages.GestureDelete)
	case "c":
		return m, messages.Press(messages.GestureChooseColor)
	}
	return m, nil
}

func (m ListModel) View() string {
	if len(m.rows) == 0 {
		return shared.CenterContent(theme.Muted.Render("No notes yet"), m.height)
	}

	var lines []string
	for i := m.offset; i < len(m.rows); i++ {
		if i > m.offset {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(m.renderRow(i), "\n")...)
		if m.height > 0 && len(lines) >= m.height {
			break
		}
	}
	content := strings.Join(lines, "\n")
	if m.height > 0 {
		content = shared.FitHeight(content, m.height)
	}
	return content
}

func (m ListModel) renderRow(i int) string {
	row := m.rows[i]
	bodyWidth := m.width - gutterWidth
	if bodyWidth < 10 {
		bodyWidth = 10
	}

	body := lipgloss.NewStyle().
		Background(lipgloss.Color(row.Background.Hex())).
		Foreground(lipgloss.Color(row.Background.Contrast().Hex())).
		Width(bodyWidth).
		Padding(0, 1).
		Render(row.Label)

	marker := "  "
	switch {
	case i == m.cursor && m.focused && i == m.selected:
		marker = theme.Cursor.Render(">") + theme.Selected.Render("*")
	case i == m.cursor && m.focused:
		marker = theme.Cursor.Render(">") + " "
	case i == m.selected:
		marker = " " + theme.Selected.Render("*")
	}
	gutter := marker + strings.Repeat("\n"+strings.Repeat(" ", gutterWidth), lipgloss.Height(body)-1)

	return lipgloss.JoinHorizontal(lipgloss.Top, gutter, body)
}

// rowHeight is the number of lines row i takes, without its separator.
func (m ListModel) rowHeight(i int) int {
	return lipgloss.Height(m.renderRow(i))
}

func (m *ListModel) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.offset >= len(m.rows) {
		m.offset = len(m.rows) - 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
	if m.height <= 0 || len(m.rows) == 0 {
		return
	}
	for m.offset < m.cursor {
		used := 0
		for i := m.offset; i <= m.cursor; i++ {
			if i > m.offset {
				used++
			}
			used += m.rowHeight(i)
		}
		if used <= m.height {
			break
		}
		m.offset++
	}
}
