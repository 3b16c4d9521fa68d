package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const asciiLogo = `
  ___  ___ __  __  ___  _  _  ___  ___ _____
 |   \| __|  \/  |/ _ \| || |/ _ \/ __|_   _|
 | |) | _|| |\/| | (_) | __ | (_) \__ \ | |
 |___/|___|_|  |_|\___/|_||_|\___/|___/ |_|
`

var logoColors = []string{"#00BFFF", "#4169E1", "#8A2BE2", "#FF00FF"}

// Banner returns the gradient styled logo shown when the menu starts.
func Banner() string {
	lines := strings.Split(strings.Trim(asciiLogo, "\n"), "\n")
	colored := make([]string, len(lines))
	for i, line := range lines {
		color := logoColors[min(i, len(logoColors)-1)]
		colored[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(line)
	}
	return logoContainerStyle.Render(strings.Join(colored, "\n"))
}

var logoContainerStyle = lipgloss.NewStyle().
	MarginLeft(2).
	MarginBottom(1).
	Padding(0, 1).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62"))
