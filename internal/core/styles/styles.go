// Package styles defines shared lipgloss styles for command output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Title   = lipgloss.NewStyle().Bold(true)
	Subtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Bar renders a horizontal chart bar of the given width.
func Bar(width int) string {
	if width <= 0 {
		return ""
	}
	b := make([]rune, width)
	for i := range b {
		b[i] = '█'
	}
	return Accent.Render(string(b))
}
