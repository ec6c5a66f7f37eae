package store

import (
	"context"
	"fmt"
	"time"

	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/internal/utils"
	"github.com/amekhanov/drill-journal/models"
)

type pendingWellRepository struct {
	*DB
	ids    *utils.LocalIDGenerator
	logger *logger.Logger
}

func NewPendingWellRepository(db *DB, logger *logger.Logger) PendingWellRepository {
	return &pendingWellRepository{
		DB:     db,
		ids:    utils.NewLocalIDGenerator(),
		logger: logger,
	}
}

func (r *pendingWellRepository) Save(ctx context.Context, well models.Well) (models.Well, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if well.LocalID == "" {
		well.LocalID = r.ids.Generate()
	}
	if well.CreatedAt.IsZero() {
		well.CreatedAt = now
	}
	well.UpdatedAt = now
	well.SyncStatus = models.SyncPending

	_, err := r.DB.ExecContext(ctx, upsertPendingWell,
		well.LocalID,
		well.Name,
		well.Area,
		well.Structure,
		well.DesignDepth,
		well.SyncStatus,
		well.CreatedAt,
		well.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingWellRepository.Save").
			Str("local_id", well.LocalID).
			Msg("failed to execute upsert for pending well")
		return models.Well{}, fmt.Errorf("failed to save pending well (local_id=%s): %w", well.LocalID, err)
	}

	return well, nil
}

func (r *pendingWellRepository) GetAll(ctx context.Context) ([]models.Well, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllPendingWells)
	if err != nil {
		log.Err(err).
			Str("func", "pendingWellRepository.GetAll").
			Msg("failed to execute query for getting pending wells")
		return nil, fmt.Errorf("failed to query pending wells: %w", err)
	}
	defer rows.Close()

	var wells []models.Well

	for rows.Next() {
		var well models.Well

		scanErr := rows.Scan(
			&well.LocalID,
			&well.Name,
			&well.Area,
			&well.Structure,
			&well.DesignDepth,
			&well.SyncStatus,
			&well.CreatedAt,
			&well.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pendingWellRepository.GetAll").
				Msg("failed to scan pending well row")
			return nil, fmt.Errorf("failed to scan pending well row: %w", scanErr)
		}

		wells = append(wells, well)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pendingWellRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending well rows: %w", rowsErr)
	}

	return wells, nil
}

func (r *pendingWellRepository) Delete(ctx context.Context, localID string) error {
	log := logger.FromContext(ctx)

	// no rows affected is fine: the record may have been removed by an
	// earlier replay whose ack the client did observe
	_, err := r.DB.ExecContext(ctx, deletePendingWell, localID)
	if err != nil {
		log.Err(err).
			Str("func", "pendingWellRepository.Delete").
			Str("local_id", localID).
			Msg("failed to execute delete for pending well")
		return fmt.Errorf("failed to delete pending well (local_id=%s): %w", localID, err)
	}

	return nil
}

func (r *pendingWellRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, clearPendingWells)
	if err != nil {
		log.Err(err).
			Str("func", "pendingWellRepository.Clear").
			Msg("failed to clear pending wells")
		return fmt.Errorf("failed to clear pending wells: %w", err)
	}

	return nil
}
