package store

import (
	"context"
	"fmt"
	"time"

	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/internal/utils"
	"github.com/amekhanov/drill-journal/models"
)

type pendingLayerRepository struct {
	*DB
	ids    *utils.LocalIDGenerator
	logger *logger.Logger
}

func NewPendingLayerRepository(db *DB, logger *logger.Logger) PendingLayerRepository {
	return &pendingLayerRepository{
		DB:     db,
		ids:    utils.NewLocalIDGenerator(),
		logger: logger,
	}
}

func (r *pendingLayerRepository) Save(ctx context.Context, layer models.Layer) (models.Layer, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if layer.LocalID == "" {
		layer.LocalID = r.ids.Generate()
	}
	if layer.CreatedAt.IsZero() {
		layer.CreatedAt = now
	}
	layer.UpdatedAt = now
	layer.SyncStatus = models.SyncPending

	_, err := r.DB.ExecContext(ctx, upsertPendingLayer,
		layer.LocalID,
		layer.WellID,
		layer.DepthFrom,
		layer.DepthTo,
		layer.Lithology,
		layer.Description,
		layer.SyncStatus,
		layer.CreatedAt,
		layer.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingLayerRepository.Save").
			Str("local_id", layer.LocalID).
			Str("well_id", layer.WellID).
			Msg("failed to execute upsert for pending layer")
		return models.Layer{}, fmt.Errorf("failed to save pending layer (local_id=%s): %w", layer.LocalID, err)
	}

	return layer, nil
}

func (r *pendingLayerRepository) GetAll(ctx context.Context) ([]models.Layer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllPendingLayers)
	if err != nil {
		log.Err(err).
			Str("func", "pendingLayerRepository.GetAll").
			Msg("failed to execute query for getting pending layers")
		return nil, fmt.Errorf("failed to query pending layers: %w", err)
	}
	defer rows.Close()

	return r.scanLayers(ctx, rows)
}

func (r *pendingLayerRepository) GetByWell(ctx context.Context, wellID string) ([]models.Layer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getPendingLayersByWell, wellID)
	if err != nil {
		log.Err(err).
			Str("func", "pendingLayerRepository.GetByWell").
			Str("well_id", wellID).
			Msg("failed to execute query for getting pending layers by well")
		return nil, fmt.Errorf("failed to query pending layers (well_id=%s): %w", wellID, err)
	}
	defer rows.Close()

	return r.scanLayers(ctx, rows)
}

func (r *pendingLayerRepository) Delete(ctx context.Context, localID string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deletePendingLayer, localID)
	if err != nil {
		log.Err(err).
			Str("func", "pendingLayerRepository.Delete").
			Str("local_id", localID).
			Msg("failed to execute delete for pending layer")
		return fmt.Errorf("failed to delete pending layer (local_id=%s): %w", localID, err)
	}

	return nil
}

func (r *pendingLayerRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, clearPendingLayers)
	if err != nil {
		log.Err(err).
			Str("func", "pendingLayerRepository.Clear").
			Msg("failed to clear pending layers")
		return fmt.Errorf("failed to clear pending layers: %w", err)
	}

	return nil
}

func (r *pendingLayerRepository) scanLayers(ctx context.Context, rows rowScanner) ([]models.Layer, error) {
	log := logger.FromContext(ctx)

	var layers []models.Layer

	for rows.Next() {
		var layer models.Layer

		scanErr := rows.Scan(
			&layer.LocalID,
			&layer.WellID,
			&layer.DepthFrom,
			&layer.DepthTo,
			&layer.Lithology,
			&layer.Description,
			&layer.SyncStatus,
			&layer.CreatedAt,
			&layer.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pendingLayerRepository.scanLayers").
				Msg("failed to scan pending layer row")
			return nil, fmt.Errorf("failed to scan pending layer row: %w", scanErr)
		}

		layers = append(layers, layer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pendingLayerRepository.scanLayers").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending layer rows: %w", rowsErr)
	}

	return layers, nil
}

// rowScanner is the subset of *sql.Rows used by scanLayers.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}
