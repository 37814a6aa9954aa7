package report

import "github.com/charmbracelet/lipgloss"

var (
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	keyStyle    = lipgloss.NewStyle().Bold(true)
	valueStyle  = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
