package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e8e4da")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0ece2")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b8bcc8"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#787f8e"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565e6e"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6fbf87"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0b54c"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d66a6a"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6fbf87"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0b54c")).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565e6e"))
)

// helpBar renders alternating key/label pairs as a single help line.
func helpBar(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, helpKeyStyle.Render(pairs[i])+" "+helpLabelStyle.Render(pairs[i+1]))
	}
	return strings.Join(parts, helpLabelStyle.Render(" · "))
}
