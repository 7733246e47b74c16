package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	labelStyle = lipgloss.NewStyle().Bold(true)

	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	disabledStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	buttonStyle         = lipgloss.NewStyle().Padding(0, 1)
	buttonSelectedStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorHighlight).Bold(true)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
)
