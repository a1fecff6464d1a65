package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"notesapp/internal/tui/theme"
)

// HelpSection is a titled group of key bindings
type HelpSection struct {
	Title string
	Binds []key.Binding
}

var (
	helpSectionStyle = theme.Title
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(theme.Primary).
				Padding(1, 2)
)

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(title string, sections []HelpSection, width, height int) string {
	var b strings.Builder
	b.WriteString(helpSectionStyle.Render(title))
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(helpSectionStyle.Render(section.Title))
		b.WriteString("\n")
		for _, bind := range section.Binds {
			if !bind.Enabled() {
				continue
			}
			h := bind.Help()
			b.WriteString("  " + helpKeyStyle.Width(16).Render(h.Key) + helpDescStyle.Render(h.Desc) + "\n")
		}
	}

	b.WriteString("\n" + theme.HelpHint.Render("Press any key to close"))

	box := helpBoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
