// Package activity holds the activity ledger's derived views: streak
// computation and the contribution grid. Everything here is a pure function
// of the entry list and an explicit reference date, recomputed on every read,
// so the views can never drift from the ledger.
package activity

import (
	"sort"
	"time"

	"castlog/internal/models"
	"castlog/internal/utils"
)

// StreakPolicy selects how consecutive activity is bucketed.
type StreakPolicy string

const (
	// PolicyDaily counts consecutive active days.
	PolicyDaily StreakPolicy = "daily"
	// PolicyWeekly counts consecutive active weeks (Sunday-anchored buckets).
	PolicyWeekly StreakPolicy = "weekly"
)

// distinctDatesDesc projects entries to their distinct calendar dates, sorted
// most recent first. Entries with malformed dates are skipped.
func distinctDatesDesc(entries []models.Entry) []time.Time {
	seen := make(map[string]bool)
	var dates []time.Time
	for _, e := range entries {
		if seen[e.Date] {
			continue
		}
		d, err := utils.ParseDate(e.Date)
		if err != nil {
			continue
		}
		seen[e.Date] = true
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	return dates
}

// DailyStreak returns the number of consecutive active days ending at the
// most recent active day. The walk starts from the most recent entry date
// regardless of whether that date is today: a user who has not yet logged
// today keeps their streak, only gaps within the history break it.
func DailyStreak(entries []models.Entry, today time.Time) int {
	dates := distinctDatesDesc(entries)
	if len(dates) == 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if utils.DaysBetween(dates[i-1], dates[i]) != 1 {
			break
		}
		streak++
	}

	return streak
}

// WeeklyStreak returns the number of consecutive active weeks ending at the
// most recent active week. A week is active if it contains at least one
// entry; weeks are bucketed by the Sunday on or before the entry date. As
// with DailyStreak, the current partial week is never penalized.
func WeeklyStreak(entries []models.Entry, today time.Time) int {
	seen := make(map[string]bool)
	var weeks []time.Time
	for _, e := range entries {
		d, err := utils.ParseDate(e.Date)
		if err != nil {
			continue
		}
		week := utils.SundayOnOrBefore(d)
		key := week.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		weeks = append(weeks, week)
	}

	if len(weeks) == 0 {
		return 0
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].After(weeks[j])
	})

	streak := 1
	for i := 1; i < len(weeks); i++ {
		if utils.DaysBetween(weeks[i-1], weeks[i])/7 != 1 {
			break
		}
		streak++
	}

	return streak
}

// Streak dispatches to the policy's streak function.
func Streak(policy StreakPolicy, entries []models.Entry, today time.Time) int {
	if policy == PolicyWeekly {
		return WeeklyStreak(entries, today)
	}
	return DailyStreak(entries, today)
}
