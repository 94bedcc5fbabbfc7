package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warningStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	issuerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
