package store

import (
	"database/sql"

	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/migrations"
)

// DB wraps *sql.DB together with a driver-specific error classifier and a
// logger. Repositories embed it; all SQL passes through the embedded handle.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations to the wrapped database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
