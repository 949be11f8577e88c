package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#ffe66d") // Yellow - center letter, title
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - outer letters
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - accepted words, wins
	ColorError     = lipgloss.Color("#FF6B6B") // Red - rejected input
	ColorText      = lipgloss.Color("#f1faee")
	ColorBorder    = lipgloss.Color("#3d5a80")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	rulesStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(72)

	mandatoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a2e")).
			Background(ColorPrimary).
			Padding(0, 1)

	optionalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Padding(0, 1)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 3).
			Align(lipgloss.Center)

	candidateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	wordStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)
