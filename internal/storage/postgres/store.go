// Package postgres implements the storage provider on a hosted PostgreSQL
// database. Credentials never live in the connection string; they come from
// the environment, .pgpass, or the OS keyring.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/avwray/lifedeck/internal/constants"
	"github.com/avwray/lifedeck/internal/logger"
	"github.com/avwray/lifedeck/internal/migration"
	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	s := &Store{connStr: connStr}
	s.ensureSearchPath()
	return s
}

// ensureSearchPath pins search_path to the app schema so unqualified table
// names resolve consistently.
func (s *Store) ensureSearchPath() {
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
		return
	}

	// DSN format.
	for _, part := range strings.Fields(s.connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "search_path") {
			return
		}
	}
	s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

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
	if err := s.open(); err != nil {
		return err
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
	return s.connStr
}

func (s *Store) migrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DialectPostgres), nil
}

func (s *Store) runMigrations() error {
	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	_, err = runner.Run()
	return err
}

// Migrate applies any pending migrations and returns the count applied.
// It opens the connection itself: Load refuses an outdated schema, which is
// exactly the state this method repairs.
func (s *Store) Migrate() (int, error) {
	if s.db == nil {
		if err := s.open(); err != nil {
			return 0, err
		}
	}
	runner, err := s.migrationRunner()
	if err != nil {
		return 0, err
	}
	return runner.Run()
}

func (s *Store) validateSchemaVersion() error {
	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
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

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

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

func formatNullTimestamp(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func nowNull() sql.NullString {
	return sql.NullString{String: time.Now().Format(time.RFC3339), Valid: true}
}
