package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#2a3440")).
	Padding(1, 2).
	Width(44)

var (
	dialogHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3aa8a0")).
				Bold(true)
	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98a0b3"))
	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4a7a6b"))
	dialogActiveFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d8dade")).
				Bold(true)
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	header := dialogHeaderStyle.Render(title)
	body := dialogBodyStyle.Render(message)
	hint := dialogBodyStyle.Render("\ny: confirm | n: cancel")
	return dialogStyle.Render(header + "\n\n" + body + hint)
}

// FormField is one labelled line of a form dialog.
type FormField struct {
	Label string
	Value string
}

// FormDialog renders a multi-field form with one active field. The active
// field shows the live input; the rest show their current values.
func FormDialog(title string, fields []FormField, active int, errMsg string) string {
	header := dialogHeaderStyle.Render(title)

	var b strings.Builder
	b.WriteString(header + "\n\n")
	for i, f := range fields {
		label := dialogBodyStyle.Render(f.Label + ": ")
		if i == active {
			b.WriteString("> " + label + dialogActiveFieldStyle.Render(f.Value+"█"))
		} else {
			b.WriteString("  " + label + dialogFieldStyle.Render(f.Value))
		}
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n" + errorHeaderStyle.Render(SanitizeOneLine(errMsg)) + "\n")
	}
	b.WriteString(dialogBodyStyle.Render("\ntab: next field | enter: save | esc: cancel"))

	return dialogStyle.Render(b.String())
}
