package validation

import (
	"errors"
	"fmt"
	"strings"

	"castlog/internal/utils"
)

// ErrEmptyText is returned when an entry's text is empty after trimming.
var ErrEmptyText = errors.New("entry text cannot be empty")

// EntryInput is what the user supplies when logging a new entry.
type EntryInput struct {
	Text     string
	ImageURL string
	Channel  string
}

// ValidateEntry checks an entry input before any state change. The only
// structural requirement is non-empty text; image and channel are optional
// pass-through values.
func ValidateEntry(in EntryInput) error {
	if strings.TrimSpace(in.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// ValidateDate checks that a date string is a well-formed YYYY-MM-DD date.
func ValidateDate(dateStr string) error {
	if !utils.ValidateDateFormat(dateStr) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return nil
}
