package store

import (
	"context"

	"github.com/amekhanov/drill-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PendingWellRepository is the local staging area for wells created while the
// journal server was unreachable. Every record it holds is pending; a record
// leaves the repository only after the server has acknowledged it.
type PendingWellRepository interface {
	// Save inserts or overwrites a well by its local id. An empty LocalID
	// is assigned here, exactly once. SyncStatus is forced to pending and
	// UpdatedAt is stamped on every call; CreatedAt only when still zero.
	// Returns the stored record with all generated fields populated.
	Save(ctx context.Context, well models.Well) (models.Well, error)

	// GetAll returns the materialized set of pending wells. Order is
	// whatever the store yields; callers must not depend on it.
	GetAll(ctx context.Context) ([]models.Well, error)

	// Delete removes the well with the given local id. A missing key is a
	// no-op, not an error: the server may have accepted a replayed create
	// whose acknowledgment the client never saw.
	Delete(ctx context.Context, localID string) error

	// Clear wipes the table. Test and reset tooling only; the sync path
	// never calls it.
	Clear(ctx context.Context) error
}

// PendingLayerRepository is the staging area for geological layers, mirroring
// [PendingWellRepository] with an extra by-well lookup.
type PendingLayerRepository interface {
	Save(ctx context.Context, layer models.Layer) (models.Layer, error)
	GetAll(ctx context.Context) ([]models.Layer, error)

	// GetByWell returns pending layers whose well reference equals wellID.
	GetByWell(ctx context.Context, wellID string) ([]models.Layer, error)

	Delete(ctx context.Context, localID string) error
	Clear(ctx context.Context) error
}
