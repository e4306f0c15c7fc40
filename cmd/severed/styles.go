package main

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting: lipgloss degrades
// colors automatically based on terminal capability.
var (
	styleCyan   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleRed    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleGreen  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style to text when colors are enabled,
// returning the text unmodified otherwise.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
