package store

import (
	"database/sql"

	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
