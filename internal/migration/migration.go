package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/avwray/lifedeck/internal/logger"
)

// Migration is a single versioned schema migration.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Dialect selects the SQL placeholder style for the backing database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Runner applies versioned SQL migrations from a filesystem of
// NNN_name.sql files, tracking the applied version in a schema_version table.
type Runner struct {
	db      *sql.DB
	fs      fs.FS
	dialect Dialect
}

// NewRunner creates a migration runner over the given database and
// migration filesystem.
func NewRunner(db *sql.DB, migrationFS fs.FS, dialect Dialect) *Runner {
	return &Runner{db: db, fs: migrationFS, dialect: dialect}
}

// EnsureSchemaVersionTable creates the schema_version table if it doesn't exist.
func (r *Runner) EnsureSchemaVersionTable() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`)
	return err
}

// CurrentVersion returns the applied schema version, or 0 for a fresh database.
func (r *Runner) CurrentVersion() (int, error) {
	if err := r.EnsureSchemaVersionTable(); err != nil {
		return 0, fmt.Errorf("failed to ensure schema_version table: %w", err)
	}

	var version int
	err := r.db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}

// SetVersion records the applied schema version.
func (r *Runner) SetVersion(version int) error {
	if err := r.EnsureSchemaVersionTable(); err != nil {
		return fmt.Errorf("failed to ensure schema_version table: %w", err)
	}

	if _, err := r.db.Exec("DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("failed to clear version: %w", err)
	}

	insert := "INSERT INTO schema_version (version) VALUES (?)"
	if r.dialect == DialectPostgres {
		insert = "INSERT INTO schema_version (version) VALUES ($1)"
	}
	if _, err := r.db.Exec(insert, version); err != nil {
		return fmt.Errorf("failed to set version: %w", err)
	}
	return nil
}

// ReadMigrationFiles parses migration files from the filesystem, sorted by
// version number. Filenames must look like 001_init.sql.
func (r *Runner) ReadMigrationFiles() ([]Migration, error) {
	files, err := fs.ReadDir(r.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		parts := strings.SplitN(file.Name(), "_", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid migration filename %q", file.Name())
		}
		version, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid migration version in %q: %w", file.Name(), err)
		}

		content, err := fs.ReadFile(r.fs, file.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %q: %w", file.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(parts[1], ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// LatestVersion returns the highest migration version available on disk.
func (r *Runner) LatestVersion() (int, error) {
	migrations, err := r.ReadMigrationFiles()
	if err != nil {
		return 0, err
	}
	if len(migrations) == 0 {
		return 0, nil
	}
	return migrations[len(migrations)-1].Version, nil
}

// Run applies all pending migrations in order, each inside its own
// transaction. It returns the number of migrations applied.
func (r *Runner) Run() (int, error) {
	current, err := r.CurrentVersion()
	if err != nil {
		return 0, err
	}

	migrations, err := r.ReadMigrationFiles()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := r.db.Begin()
		if err != nil {
			return applied, fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return applied, fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		if err := r.SetVersion(m.Version); err != nil {
			return applied, err
		}
		logger.Info("Applied migration", "version", m.Version, "name", m.Name)
		applied++
	}

	return applied, nil
}
