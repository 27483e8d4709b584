package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorSuccess   = lipgloss.Color("82")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorDanger    = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("245") // Light gray
)

// Styles
var (
	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section headers
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	// Scenario list
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Histogram
	histogramEmptyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	okBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	lateBarStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	// Values
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Error
	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// bandColor returns the color for a probability band
func bandColor(band string) lipgloss.Color {
	switch band {
	case "high":
		return colorSuccess
	case "moderate":
		return colorWarning
	default:
		return colorDanger
	}
}
