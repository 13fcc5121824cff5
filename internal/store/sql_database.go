package store

import (
	"database/sql"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/migrations"
)

// DB wraps the SQLite connection pool shared by the record storages.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
