package storage

import (
	"github.com/avwray/lifedeck/internal/storage/postgres"
	"github.com/avwray/lifedeck/internal/storage/sqlite"
)

// NewSQLiteStore creates a Provider backed by a local SQLite file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a Provider backed by a hosted PostgreSQL database.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}
