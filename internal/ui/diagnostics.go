package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDiagnostics renders the tail of the application log as an overlay.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()
	width := max(m.width-4, 20)
	rows := max(m.height-8, 1)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Diagnostics"))
	if m.logPath != "" {
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(truncateMiddle(m.logPath, width-16)))
	}
	b.WriteString("\n\n")

	switch {
	case strings.TrimSpace(m.logPath) == "":
		b.WriteString(styles.MutedText.Render("Logging is disabled. Set log_file in the config or pass --log-file."))
	case m.diagnosticsErr != nil:
		b.WriteString(styles.DangerText.Render(fmt.Sprintf("Cannot read log: %v", m.diagnosticsErr)))
	case len(m.diagnostics) == 0:
		b.WriteString(styles.MutedText.Render("No log entries yet."))
	default:
		entries := m.diagnostics
		if len(entries) > rows {
			entries = entries[len(entries)-rows:]
		}
		for i, entry := range entries {
			line := truncate(entry.String(), width-6)
			switch strings.ToUpper(entry.Level) {
			case "ERROR", "FATAL", "PANIC", "DPANIC":
				line = styles.DangerText.Render(line)
			case "WARN":
				line = styles.WarningText.Render(line)
			case "DEBUG":
				line = styles.FaintText.Render(line)
			default:
				line = styles.Text.Render(line)
			}
			b.WriteString(line)
			if i < len(entries)-1 {
				b.WriteString("\n")
			}
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1).
		Width(width)

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
