package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#0066CC") // Ocean blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue
	colorOnCard  = lipgloss.Color("#FFFFFF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Recommendation card; border and text color are set per tone
	recCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Bold(true).
			Padding(0, 2).
			Align(lipgloss.Center)

	// Main card; background is set from the wave color
	mainCardStyle = lipgloss.NewStyle().
			Foreground(colorOnCard).
			Padding(1, 3).
			Align(lipgloss.Center)

	bigDataStyle = lipgloss.NewStyle().
			Foreground(colorOnCard).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	dayNameStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10)

	waveTextStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// recommendationStyle colors the recommendation card for its tone
func recommendationStyle(color string) lipgloss.Style {
	c := lipgloss.Color(color)
	return recCardStyle.BorderForeground(c).Foreground(c)
}

// waveCardStyle fills the main card with the color of the wave band
func waveCardStyle(color string) lipgloss.Style {
	return mainCardStyle.Background(lipgloss.Color(color))
}
