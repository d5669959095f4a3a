package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	ownNameStyle  = lipgloss.NewStyle().Bold(true)
	nameStyle     = lipgloss.NewStyle().Faint(true)
	sentinelStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)
