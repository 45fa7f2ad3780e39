package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("70")).
			Bold(true)

	noStreakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	completedCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("70"))

	todayCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	emptyCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	entryDateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
