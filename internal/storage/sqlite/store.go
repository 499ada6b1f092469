// Package sqlite implements the storage provider on a local SQLite file.
package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/avwray/lifedeck/internal/constants"
	"github.com/avwray/lifedeck/internal/migration"
	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default settings on a fresh database.
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			Timezone:             "Local",
			Currency:             constants.DefaultCurrency,
			CompletionWindowDays: constants.DefaultCompletionWindowDays,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying handle for integration tests.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

func (s *Store) migrationFS() (fs.FS, error) {
	return fs.Sub(migrations.FS, "sqlite")
}

func (s *Store) runMigrations() error {
	subFS, err := s.migrationFS()
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	runner := migration.NewRunner(s.db, subFS, migration.DialectSQLite)
	_, err = runner.Run()
	return err
}

// Migrate applies any pending migrations and returns the count applied.
// It opens the database itself: Load refuses an outdated schema, which is
// exactly the state this method repairs.
func (s *Store) Migrate() (int, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return 0, fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return 0, fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
		if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return 0, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	subFS, err := s.migrationFS()
	if err != nil {
		return 0, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DialectSQLite).Run()
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := s.migrationFS()
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	runner := migration.NewRunner(s.db, subFS, migration.DialectSQLite)

	current, err := runner.CurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("database schema is at version %d but version %d is required, run '%s migrate'",
			current, latest, constants.AppName)
	}
	return nil
}

// parseTimestamp parses an RFC3339 timestamp column value.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// parseNullTimestamp parses a nullable RFC3339 timestamp column value.
func parseNullTimestamp(value sql.NullString, column string) (*time.Time, error) {
	if !value.Valid {
		return nil, nil
	}
	t, err := parseTimestamp(value.String, column)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// formatNullTimestamp formats an optional timestamp for storage.
func formatNullTimestamp(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}
