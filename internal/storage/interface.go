package storage

import (
	"errors"

	"castlog/internal/models"
)

// ErrNotLoaded is returned when a store is used before Load/Init.
var ErrNotLoaded = errors.New("storage not loaded")

// Provider is the persistence collaborator for the entry ledger. The core
// logic is storage-agnostic: the same ledger and derived views run against a
// JSON file, SQLite, or PostgreSQL without modification.
//
// Entries are append-only. GetEntries returns entries most-recent-insertion
// first and must be stable: repeated calls with no intervening AddEntry
// return an identical ordered sequence.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Entries
	AddEntry(models.Entry) error
	GetEntries() ([]models.Entry, error)
	GetEntriesForDay(day string) ([]models.Entry, error)

	// Utils
	GetConfigPath() string
}

// DefaultSettings returns the settings a fresh store starts with.
func DefaultSettings() models.Settings {
	return models.Settings{
		Timezone:       "Local",
		PublishEnabled: false,
	}
}
