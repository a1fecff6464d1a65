package tui

import (
	"github.com/charmbracelet/lipgloss"

	"notesapp/internal/tui/theme"
)

var (
	// Status bar
	StatusBarStyle = theme.StatusBar

	// Help text
	HelpStyle = theme.HelpHint

	panelStyle        = theme.Panel
	panelFocusedStyle = theme.PanelFocused
	buttonStyle       = theme.Button
	buttonKeyStyle    = theme.ButtonKey
	labelStyle        = theme.Label
	swatchLabelStyle  = lipgloss.NewStyle().Foreground(theme.TextMuted).MarginLeft(1)
)
