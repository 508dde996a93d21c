package cmd

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	noteStyle   = lipgloss.NewStyle().Faint(true)
)
