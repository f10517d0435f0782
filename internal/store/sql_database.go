package store

import (
	"database/sql"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/migrations"
)

// DB wraps the SQLite connection of the credential store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
