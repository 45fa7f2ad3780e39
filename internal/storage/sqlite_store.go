package storage

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"castlog/internal/migration"
	"castlog/internal/models"
	"castlog/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default settings on first run
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

// Load opens the database, initializing it first if the file does not exist
// yet. A fresh database simply has zero entries.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.Init()
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.validateSchemaVersion(); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(nil)
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	return runner.ValidateVersion()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, ErrNotLoaded
	}

	row := s.db.QueryRow(`
		SELECT timezone, fid, default_channel, publish_enabled
		FROM settings WHERE id = 1`)

	var settings models.Settings
	var publishEnabled int
	err := row.Scan(&settings.Timezone, &settings.FID, &settings.DefaultChannel, &publishEnabled)
	if err != nil {
		return models.Settings{}, err
	}
	settings.PublishEnabled = publishEnabled != 0

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	publishEnabled := 0
	if settings.PublishEnabled {
		publishEnabled = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, fid, default_channel, publish_enabled)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			timezone = excluded.timezone,
			fid = excluded.fid,
			default_channel = excluded.default_channel,
			publish_enabled = excluded.publish_enabled`,
		settings.Timezone, settings.FID, settings.DefaultChannel, publishEnabled)

	return err
}

func (s *SQLiteStore) AddEntry(entry models.Entry) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (id, text, day, image_url, channel, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Text, entry.Date, entry.ImageURL, entry.Channel,
		entry.CreatedAt.Format(time.RFC3339))

	return err
}

// GetEntries returns all entries, most recent insertion first. The seq column
// is assigned monotonically on insert, so ordering by it is stable.
func (s *SQLiteStore) GetEntries() ([]models.Entry, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	rows, err := s.db.Query(`
		SELECT id, text, day, image_url, channel, created_at
		FROM entries ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (s *SQLiteStore) GetEntriesForDay(day string) ([]models.Entry, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	rows, err := s.db.Query(`
		SELECT id, text, day, image_url, channel, created_at
		FROM entries WHERE day = ? ORDER BY seq DESC`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.Entry, error) {
	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		var createdAt string

		if err := rows.Scan(&e.ID, &e.Text, &e.Date, &e.ImageURL, &e.Channel, &createdAt); err != nil {
			return nil, err
		}

		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for entry %s: %w", e.ID, err)
		}
		e.CreatedAt = t

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
