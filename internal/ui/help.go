package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var helpTitles = []string{"Pages", "Navigation", "Temples", "General"}

// renderHelp renders the help overlay from the key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	groups := m.keys.FullHelp()
	for i, group := range groups {
		if i < len(helpTitles) {
			b.WriteString(styles.AccentText.Bold(true).Render(helpTitles[i]))
			b.WriteString("\n")
		}

		for _, binding := range group {
			help := binding.Help()
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(help.Key))
			b.WriteString(styles.Text.Render(help.Desc))
			b.WriteString("\n")
		}

		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
