package utils

import (
	"fmt"
	"math"
	"time"

	"castlog/internal/constants"
)

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified timezone.
// This ensures that "today" is determined by the user's configured timezone, not the system timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
// The result is midnight UTC, which is sufficient for whole-day arithmetic.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// Truncate to whole days so weekday arithmetic is not skewed by the time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOnOrBefore returns the most recent Monday on or before t.
// Weekdays are remapped so Monday=0 .. Sunday=6 before subtracting.
func MondayOnOrBefore(t time.Time) time.Time {
	d := dateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// SundayOnOrBefore returns the most recent Sunday on or before t.
// Used as the week-bucket key for weekly streak computation.
func SundayOnOrBefore(t time.Time) time.Time {
	d := dateOnly(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DaysBetween returns the whole-day difference a-b, negative when a precedes
// b. Both times are truncated to their calendar date first, so DST
// transitions cannot produce off-by-one results when the dates share a
// location.
func DaysBetween(a, b time.Time) int {
	da := dateOnly(a)
	db := dateOnly(b)
	return int(math.Round(da.Sub(db).Hours() / 24))
}
