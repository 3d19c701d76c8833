package main

import "github.com/charmbracelet/lipgloss"

// style controls the demo's rendering.
type style struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	Selection lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Help      lipgloss.Style
}

func defaultStyle() style {
	return style{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("255")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
