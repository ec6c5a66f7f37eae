// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

package store

const (
	upsertPendingWell = `
		INSERT INTO pending_wells (
			local_id,
			name,
			area,
			structure,
			design_depth,
			sync_status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (local_id) DO UPDATE SET
			name         = excluded.name,
			area         = excluded.area,
			structure    = excluded.structure,
			design_depth = excluded.design_depth,
			sync_status  = excluded.sync_status,
			updated_at   = excluded.updated_at;`

	getAllPendingWells = `
		SELECT
			local_id,
			name,
			area,
			structure,
			design_depth,
			sync_status,
			created_at,
			updated_at
		FROM pending_wells
		WHERE sync_status = 'pending';`

	deletePendingWell = `
		DELETE FROM pending_wells
		WHERE local_id = $1;`

	clearPendingWells = `
		DELETE FROM pending_wells;`

	upsertPendingLayer = `
		INSERT INTO pending_layers (
			local_id,
			well_id,
			depth_from,
			depth_to,
			lithology,
			description,
			sync_status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (local_id) DO UPDATE SET
			well_id     = excluded.well_id,
			depth_from  = excluded.depth_from,
			depth_to    = excluded.depth_to,
			lithology   = excluded.lithology,
			description = excluded.description,
			sync_status = excluded.sync_status,
			updated_at  = excluded.updated_at;`

	getAllPendingLayers = `
		SELECT
			local_id,
			well_id,
			depth_from,
			depth_to,
			lithology,
			description,
			sync_status,
			created_at,
			updated_at
		FROM pending_layers
		WHERE sync_status = 'pending';`

	getPendingLayersByWell = `
		SELECT
			local_id,
			well_id,
			depth_from,
			depth_to,
			lithology,
			description,
			sync_status,
			created_at,
			updated_at
		FROM pending_layers
		WHERE sync_status = 'pending' AND well_id = $1;`

	deletePendingLayer = `
		DELETE FROM pending_layers
		WHERE local_id = $1;`

	clearPendingLayers = `
		DELETE FROM pending_layers;`
)
