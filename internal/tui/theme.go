package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — bright enough for kids, easy on dark terminals
var (
	colPrimary = lipgloss.Color("#8B5CF6")
	colAccent  = lipgloss.Color("#F97316")
	colSuccess = lipgloss.Color("#22C55E")
	colError   = lipgloss.Color("#F43F5E")
	colText    = lipgloss.Color("#F8FAFC")
	colTextDim = lipgloss.Color("#94A3B8")
	colBorder  = lipgloss.Color("#334155")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colTextDim)

	stemStyle = lipgloss.NewStyle().
			Foreground(colText).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colTextDim).
			Italic(true)

	correctStyle = lipgloss.NewStyle().Foreground(colSuccess).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(colError).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colTextDim)
	choiceStyle  = lipgloss.NewStyle().Foreground(colText)
	cursorStyle  = lipgloss.NewStyle().Foreground(colPrimary).Bold(true)
	scoreStyle   = lipgloss.NewStyle().Foreground(colAccent).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(1, 2)
)
