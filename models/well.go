package models

import "time"

// Well is a single borehole record of the drilling journal.
//
// LocalID is assigned on the client the first time the record enters the
// local cache and never changes afterwards. It travels to the server as
// offline_id so that a replayed create request can be de-duplicated.
// ServerID is present only after the server has accepted the record.
type Well struct {
	// ServerID is the primary key assigned by the journal server.
	ServerID int64 `json:"id,omitempty"`

	// LocalID is the client-generated identifier, unique within one
	// client's cache. Wire name offline_id.
	LocalID string `json:"offline_id,omitempty"`

	// Name is the well designation, e.g. "Скв. 12-бис".
	Name string `json:"name" validate:"required"`

	// Area is the survey area the well belongs to.
	Area string `json:"area" validate:"required"`

	// Structure is the geological structure being drilled.
	Structure string `json:"structure" validate:"required"`

	// DesignDepth is the planned depth in metres. Must be positive.
	DesignDepth float64 `json:"design_depth" validate:"required,gt=0"`

	SyncStatus SyncStatus `json:"sync_status,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
