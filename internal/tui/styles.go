package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	styleTab = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	styleFavorite = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	styleMatch = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Underline(true)

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)
