package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the console reporter.

var (
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("86")). // Cyan
			Padding(0, 2)

	benchTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")). // Yellow
			Bold(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")) // Blue/purple

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	competitiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")) // Green
	slowerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")) // Yellow
	needsWorkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red
)
