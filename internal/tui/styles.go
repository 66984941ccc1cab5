package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary = lipgloss.Color("39")
	ColorAccent  = lipgloss.Color("170")
	ColorSuccess = lipgloss.Color("42")
	ColorDanger  = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")

	// Base styles
	AppStyle   = lipgloss.NewStyle().Padding(1, 2)
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	SelectedItemStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	UnselectedItemStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Width(24)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true)
	MetricPositiveStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	HelpStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)
