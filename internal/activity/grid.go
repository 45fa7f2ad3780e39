package activity

import (
	"time"

	"castlog/internal/constants"
	"castlog/internal/models"
	"castlog/internal/utils"
)

// BuildGrid produces the contribution grid: consecutive calendar weeks
// (Monday through Sunday) from the Monday on or before today until the window
// covers today + 90 days. Rows are always 7 cells; the final row may extend
// past the window end and is not truncated.
//
// Output is deterministic for a fixed today and entry set, which keeps
// snapshot-style tests stable.
func BuildGrid(entries []models.Entry, today time.Time) [][]models.GridCell {
	active := make(map[string]bool, len(entries))
	for _, e := range entries {
		active[e.Date] = true
	}

	todayStr := today.Format(constants.DateFormat)
	windowEnd := today.AddDate(0, 0, constants.GridWindowDays)

	var grid [][]models.GridCell
	current := utils.MondayOnOrBefore(today)
	for !current.After(windowEnd) {
		row := make([]models.GridCell, 0, constants.DaysPerWeek)
		for i := 0; i < constants.DaysPerWeek; i++ {
			dateStr := current.Format(constants.DateFormat)
			row = append(row, models.GridCell{
				Date:           dateStr,
				Completed:      active[dateStr],
				IsToday:        dateStr == todayStr,
				IsFirstOfMonth: current.Day() == 1,
			})
			current = current.AddDate(0, 0, 1)
		}
		grid = append(grid, row)
	}

	return grid
}
