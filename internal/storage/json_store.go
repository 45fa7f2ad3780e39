package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"castlog/internal/logger"
	"castlog/internal/models"
)

// Store is the on-disk shape of the JSON backend. Entries are kept
// most-recent-first so the file mirrors the visible ordering.
type Store struct {
	Version  int             `json:"version"`
	Settings models.Settings `json:"settings"`
	Entries  []models.Entry  `json:"entries"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Entries:  []models.Entry{},
	}

	return s.save()
}

// Load reads the persisted ledger. A missing or unreadable file is not an
// error: the store starts with zero entries and default settings, and the
// next successful save recreates the file.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read storage, starting empty", "path", s.path, "error", err)
		}
		s.store = &Store{
			Version:  1,
			Settings: DefaultSettings(),
			Entries:  []models.Entry{},
		}
		return nil
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		logger.Warn("Failed to parse storage, starting empty", "path", s.path, "error", err)
		s.store = &Store{
			Version:  1,
			Settings: DefaultSettings(),
			Entries:  []models.Entry{},
		}
		return nil
	}

	if s.store.Entries == nil {
		s.store.Entries = []models.Entry{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, ErrNotLoaded
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Settings = settings
	return s.save()
}

// AddEntry prepends the entry to the visible ordering and persists. A write
// failure is surfaced but the in-memory append stays committed.
func (s *JSONStore) AddEntry(entry models.Entry) error {
	if s.store == nil {
		return ErrNotLoaded
	}

	s.store.Entries = append([]models.Entry{entry}, s.store.Entries...)
	return s.save()
}

func (s *JSONStore) GetEntries() ([]models.Entry, error) {
	if s.store == nil {
		return nil, ErrNotLoaded
	}

	entries := make([]models.Entry, len(s.store.Entries))
	copy(entries, s.store.Entries)
	return entries, nil
}

func (s *JSONStore) GetEntriesForDay(day string) ([]models.Entry, error) {
	if s.store == nil {
		return nil, ErrNotLoaded
	}

	var entries []models.Entry
	for _, e := range s.store.Entries {
		if e.Date == day {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
