package store

import (
	"context"
	"fmt"

	"github.com/amekhanov/drill-journal/internal/config"
	"github.com/amekhanov/drill-journal/internal/logger"
)

// ClientStorages groups the client-side pending-record repositories into a
// single value that can be passed around the service layer.
type ClientStorages struct {
	// Wells is the SQLite-backed staging area for wells created offline.
	Wells PendingWellRepository

	// Layers is the SQLite-backed staging area for layers created offline.
	Layers PendingLayerRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     well and layer repositories.
//
// Returns an error wrapping [ErrStorageUnavailable] if the database
// connection cannot be established, or a migration error.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Wells:  NewPendingWellRepository(db, logger),
		Layers: NewPendingLayerRepository(db, logger),
	}, nil
}
