package cli

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// disableColor replaces all styles with plain ones.
func disableColor() {
	successStyle = lipgloss.NewStyle()
	warnStyle = lipgloss.NewStyle()
	errorStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
}
