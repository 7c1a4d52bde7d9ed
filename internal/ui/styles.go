package ui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	PromptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	PrimaryStyle = lipgloss.NewStyle().Bold(true)

	ScreenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8"))

	DigitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("236"))
	OperatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Background(lipgloss.Color("236"))
	ControlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Background(lipgloss.Color("236"))
	ActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
)
