package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	errorColor     = lipgloss.Color("#EF4444") // Red
	warningColor   = lipgloss.Color("#F59E0B") // Amber/Yellow

	// Header styles
	headerContainerStyle = lipgloss.NewStyle().
				Background(primaryColor)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Padding(0, 1)

	headerStatsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E0E0E0")).
				Background(primaryColor).
				Padding(0, 1)

	headerModifiedStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Background(primaryColor)

	// Form styles
	formStyle = lipgloss.NewStyle().
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(mutedColor)

	labelFocusedStyle = lipgloss.NewStyle().
				Width(10).
				Foreground(primaryColor).
				Bold(true)

	stageValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	stageArrowStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	stageArrowFocusedStyle = lipgloss.NewStyle().
				Foreground(primaryColor)

	stageNameStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	stageUnknownStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E0E0E0")).
			Background(lipgloss.Color("#3B3B3B")).
			Padding(0, 3)

	buttonFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Bold(true).
				Padding(0, 3)

	// Status bar style
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 1)

	// Error display styles
	errorBarStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Padding(0, 1)

	warningBarStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Padding(0, 1)
)
