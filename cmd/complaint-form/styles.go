package main

import "github.com/charmbracelet/lipgloss"

// Palette follows the form's own colours.
var (
	colorError   = lipgloss.Color("#c0392b")
	colorSuccess = lipgloss.Color("#27ae60")
	colorHeading = lipgloss.Color("#2c3e50")
	colorMuted   = lipgloss.Color("#7f8c8d")
)

var (
	titleStyle        = lipgloss.NewStyle().Foreground(colorHeading).Bold(true).MarginBottom(1)
	passStyle         = lipgloss.NewStyle().Foreground(colorSuccess)
	failStyle         = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	alertStyle        = lipgloss.NewStyle().Foreground(colorError)
	labelStyle        = lipgloss.NewStyle().Foreground(colorMuted).Width(18)
	confirmationStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSuccess).Padding(0, 1)
)
