package viewer

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Reverse(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))

	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().Faint(true)
)
