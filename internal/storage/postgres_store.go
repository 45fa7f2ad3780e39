package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"castlog/internal/constants"
	"castlog/internal/logger"
	"castlog/internal/migration"
	"castlog/internal/models"
	"castlog/migrations"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

// PostgresStore implements Provider against a remote PostgreSQL database.
// Credentials must come from the environment, .pgpass, or the OS keyring;
// never from the connection string itself.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	s := &PostgresStore{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

func (s *PostgresStore) ensureSearchPath() {
	if strings.HasPrefix(s.connStr, "postgres://") || strings.HasPrefix(s.connStr, "postgresql://") {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
	} else if !hasDSNParam(s.connStr, "search_path") {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

// hasDSNParam reports whether a DSN-style connection string contains the
// given parameter key (case-insensitive).
func hasDSNParam(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], key) {
			return true
		}
	}
	return false
}

func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return hasDSNParam(connStr, "sslmode")
}

// ValidateConnString checks if a connection string is a valid PostgreSQL
// connection string (URI or DSN) and ensures it does not contain a password.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := u.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}
	} else {
		if hasDSNParam(connStr, "password") {
			return false, ErrEmbeddedCredentials
		}
	}

	return true, nil
}

// HasEmbeddedCredentials reports whether the connection string carries a
// password, which is never allowed on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	ok, err := ValidateConnString(connStr)
	return !ok && errors.Is(err, ErrEmbeddedCredentials)
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.validateSchemaVersion()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(nil)
	return err
}

func (s *PostgresStore) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	return runner.ValidateVersion()
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}

func (s *PostgresStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, ErrNotLoaded
	}

	row := s.db.QueryRow(`
		SELECT timezone, fid, default_channel, publish_enabled
		FROM settings WHERE id = 1`)

	var settings models.Settings
	err := row.Scan(&settings.Timezone, &settings.FID, &settings.DefaultChannel, &settings.PublishEnabled)
	if err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

func (s *PostgresStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, fid, default_channel, publish_enabled)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			fid = EXCLUDED.fid,
			default_channel = EXCLUDED.default_channel,
			publish_enabled = EXCLUDED.publish_enabled`,
		settings.Timezone, settings.FID, settings.DefaultChannel, settings.PublishEnabled)

	return err
}

func (s *PostgresStore) AddEntry(entry models.Entry) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (id, text, day, image_url, channel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.Text, entry.Date, entry.ImageURL, entry.Channel, entry.CreatedAt)

	return err
}

func (s *PostgresStore) GetEntries() ([]models.Entry, error) {
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

	return scanPGEntries(rows)
}

func (s *PostgresStore) GetEntriesForDay(day string) ([]models.Entry, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	rows, err := s.db.Query(`
		SELECT id, text, day, image_url, channel, created_at
		FROM entries WHERE day = $1 ORDER BY seq DESC`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPGEntries(rows)
}

func scanPGEntries(rows *sql.Rows) ([]models.Entry, error) {
	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.Text, &e.Date, &e.ImageURL, &e.Channel, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
