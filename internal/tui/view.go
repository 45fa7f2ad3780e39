package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"castlog/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAdd:
		return docStyle.Render(m.form.View())
	case StatePublishing:
		return docStyle.Render(m.spin.View() + " Publishing cast...")
	}

	sections := []string{
		titleStyle.Render("castlog"),
		m.viewStreak(),
		m.viewGrid(),
		m.viewEntries(),
	}

	if m.warning != "" {
		sections = append(sections, warningStyle.Render("⚠ "+m.warning))
	}
	if m.err != nil {
		sections = append(sections, warningStyle.Render("Error: "+m.err.Error()))
	}

	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewStreak() string {
	streak := m.daily
	unit := "day"
	if m.showWeekly {
		streak = m.weekly
		unit = "week"
	}

	if streak == 0 {
		return noStreakStyle.Render("🐣 No streak yet. Log an entry to begin.")
	}
	return streakStyle.Render(fmt.Sprintf("🔥 %d %s streak", streak, unit))
}

func (m Model) viewGrid() string {
	if len(m.grid) == 0 {
		return ""
	}

	labels := []string{"Mon", "", "Wed", "", "Fri", "", "Sun"}
	var b strings.Builder

	for day := 0; day < constants.DaysPerWeek; day++ {
		b.WriteString(fmt.Sprintf("%-4s", labels[day]))
		for _, week := range m.grid {
			cell := week[day]
			switch {
			case cell.Completed:
				b.WriteString(completedCellStyle.Render("■ "))
			case cell.IsToday:
				b.WriteString(todayCellStyle.Render("◎ "))
			default:
				b.WriteString(emptyCellStyle.Render("· "))
			}
		}
		if day < constants.DaysPerWeek-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewEntries() string {
	if len(m.entries) == 0 {
		return noStreakStyle.Render("No entries yet.")
	}

	shown := m.entries
	if len(shown) > 5 {
		shown = shown[:5]
	}

	var lines []string
	for _, e := range shown {
		text := e.Text
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		lines = append(lines, entryDateStyle.Render(e.Date)+"  "+text)
	}

	return strings.Join(lines, "\n")
}
