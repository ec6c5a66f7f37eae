package models

import "time"

// Lithology is the rock type of a geological layer. The set is fixed by the
// journal methodology; the validator rejects anything outside of it.
type Lithology string

const (
	Clay      Lithology = "clay"
	Sand      Lithology = "sand"
	Loam      Lithology = "loam"
	SandyLoam Lithology = "sandy_loam"
	Gravel    Lithology = "gravel"
	Sandstone Lithology = "sandstone"
	Limestone Lithology = "limestone"
	Granite   Lithology = "granite"
)

// Layer is one geological interval of a well.
//
// WellID references the owning well: the decimal server id when the well is
// already known to the server, or the well's local offline id when both were
// created offline. The server resolves the reference on replay.
// Thickness is computed by the server (depth_to - depth_from) and is never
// set by the client.
type Layer struct {
	ServerID int64  `json:"id,omitempty"`
	LocalID  string `json:"offline_id,omitempty"`

	WellID string `json:"well" validate:"required"`

	// DepthFrom is the top of the interval in metres.
	DepthFrom float64 `json:"depth_from"`

	// DepthTo is the bottom of the interval in metres and must lie strictly
	// below DepthFrom.
	DepthTo float64 `json:"depth_to" validate:"gtfield=DepthFrom"`

	// Thickness is server-computed, read-only on the client.
	Thickness float64 `json:"thickness,omitempty"`

	Lithology Lithology `json:"lithology" validate:"required,oneof=clay sand loam sandy_loam gravel sandstone limestone granite"`

	// Description is an optional free-text note from the drilling foreman.
	Description string `json:"description,omitempty"`

	SyncStatus SyncStatus `json:"sync_status,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
