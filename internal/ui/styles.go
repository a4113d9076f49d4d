// Package ui defines the terminal styles shared by omg-dev output.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic styles. Kept small on purpose: omg-dev is batch tooling, not a
// full-screen interface.
var (
	Bold    = lipgloss.NewStyle().Bold(true)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	Label   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4db6ac"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ab47bc"))
)
