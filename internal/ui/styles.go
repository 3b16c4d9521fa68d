package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the consoles.

var (
	// Menu
	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	menuKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")). // Magenta
			Bold(true)

	menuLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray

	menuQuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dim

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // Cyan/Teal

	// Outcomes
	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// Board
	markXStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Blueish
			Bold(true)
	markOStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Light purple
			Bold(true)
	gridStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
