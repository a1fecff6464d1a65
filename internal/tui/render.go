package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"notesapp/internal/tui/shared"
)

const statusBarHeight = 2

// frameSize is the area the window occupies: the terminal, capped at the
// configured window size.
func (m AppModel) frameSize() (int, int) {
	w, h := m.width, m.height
	if limit := m.cfg.Window.Width / pixelsPerColumn; limit > 0 && w > limit {
		w = limit
	}
	if limit := m.cfg.Window.Height / pixelsPerRow; limit > 0 && h > limit {
		h = limit
	}
	return w, h
}

func (m AppModel) panelWidths() (int, int) {
	w, _ := m.frameSize()
	left := w * 2 / 5
	return left, w - left
}

// layout pushes sizes down to the widgets after a resize.
func (m *AppModel) layout() {
	left, right := m.panelWidths()
	_, h := m.frameSize()
	frame := panelStyle.GetHorizontalFrameSize()

	m.composer.SetWidth(left - frame)
	// list panel: borders, the button row and the blank line above it
	m.list.SetSize(right-frame, h-statusBarHeight-panelStyle.GetVerticalFrameSize()-2)

	if m.textDialog != nil {
		m.textDialog.SetSize(m.width, m.height)
	}
	if m.colorDialog != nil {
		m.colorDialog.SetSize(m.width, m.height)
	}
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(m.cfg.Window.Title+" - Keyboard Shortcuts", helpSections(), m.width, m.height)
	}
	if m.textDialog != nil {
		return m.textDialog.View()
	}
	if m.colorDialog != nil {
		return m.colorDialog.View()
	}

	w, h := m.frameSize()
	panelHeight := h - statusBarHeight - panelStyle.GetVerticalFrameSize()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderLeftPanel(panelHeight),
		m.renderRightPanel(panelHeight),
	)

	statusBar := StatusBarStyle.Width(w).Render(HelpStyle.Render(m.statusText()))
	frame := lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

func (m AppModel) renderLeftPanel(height int) string {
	left, _ := m.panelWidths()
	pending := m.view.Pending()

	colorButton := lipgloss.NewStyle().
		Background(lipgloss.Color(pending.Hex())).
		Foreground(lipgloss.Color(pending.Contrast().Hex())).
		Padding(0, 2).
		Render("Choose Color")

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.composer.View(),
		"",
		button("Add Note", "ctrl+s"),
		"",
		labelStyle.Render("Change Note Color:"),
		colorButton+swatchLabelStyle.Render(pending.Hex()+" f5"),
	)

	style := panelStyle
	if m.focus != focusList {
		style = panelFocusedStyle
	}
	return style.Width(left - 2).Height(height).Render(shared.FitHeight(content, height))
}

func (m AppModel) renderRightPanel(height int) string {
	_, right := m.panelWidths()

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("Edit Note", "f3"),
		button("Delete Note", "f4"),
	)
	content := lipgloss.JoinVertical(lipgloss.Left, m.list.View(), "", buttons)

	style := panelStyle
	if m.focus == focusList {
		style = panelFocusedStyle
	}
	return style.Width(right - 2).Height(height).Render(shared.FitHeight(content, height))
}

func button(label, hint string) string {
	return buttonStyle.Render(label) + buttonKeyStyle.Render(hint) + " "
}

func (m AppModel) statusText() string {
	count := fmt.Sprintf("%d notes", m.view.Len())
	if sel := m.view.Selected(); sel >= 0 {
		count += fmt.Sprintf(" | note %d selected", sel+1)
	}

	switch m.focus {
	case focusList:
		return count + " | j/k: move enter: select e: edit d: delete c: color | tab: next | f1: help | q: quit"
	case focusReminder:
		return count + " | h/l: field j/k: adjust n: now i: type | tab: next | f1: help"
	default:
		return count + " | ctrl+s: add | tab: next | f1: help | ctrl+c: quit"
	}
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{Title: "Buttons", Binds: []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Color}},
		{Title: "Note List", Binds: []key.Binding{keys.RowMove, keys.RowSelect, keys.RowEdit, keys.RowDelete, keys.RowColor}},
		{Title: "Reminder", Binds: []key.Binding{keys.PickerField, keys.PickerStep, keys.PickerNow, keys.PickerType}},
		{Title: "General", Binds: []key.Binding{keys.NextFocus, keys.PrevFocus, keys.Help, keys.Quit, keys.ForceQuit}},
	}
}
