package store

import (
	"database/sql"

	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/migrations"
)

// DB wraps the SQLite connection pool used by the durable tier.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
