package models

import "time"

// Entry represents a single logged activity. Entries are append-only:
// once created they are never mutated or deleted.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Date      string    `json:"date"` // YYYY-MM-DD, local calendar date at creation
	ImageURL  string    `json:"image_url,omitempty"`
	Channel   string    `json:"channel,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GridCell is one day in the contribution grid. Cells are derived from the
// entry ledger on every read and never stored.
type GridCell struct {
	Date           string `json:"date"`
	Completed      bool   `json:"completed"`
	IsToday        bool   `json:"is_today"`
	IsFirstOfMonth bool   `json:"is_first_of_month"`
}
