// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

// Package service contains the client-side business logic of the drilling
// journal: record creation with the dual online/offline write path, cached
// reads, and the drain procedure that flushes pending records to the server
// when connectivity returns.
package service

import (
	"context"

	"github.com/amekhanov/drill-journal/models"
)

// NoticeLevel classifies a transient user notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarn    NoticeLevel = "warn"
	NoticeError   NoticeLevel = "error"
)

// Presenter is the output capability of the client. The coordinator talks to
// it for notices and fatal failures; the application shell additionally uses
// it to render record listings. Keeping it an interface here lets the
// business logic stay free of any terminal concerns.
type Presenter interface {
	// RenderWells displays the well listing, pending records included.
	RenderWells(wells []models.Well)

	// RenderLayers displays the layer listing of one well.
	RenderLayers(layers []models.Layer)

	// ShowNotice displays a transient message. Notices never interrupt the
	// current activity.
	ShowNotice(text string, level NoticeLevel)

	// ShowFatalError displays an unrecoverable failure, such as the local
	// cache refusing to open while the server is also unreachable.
	ShowFatalError(text string)
}

// JournalService is the sync coordinator: the single entry point for every
// record operation of the client. It owns the online/offline state and
// guarantees that no accepted record is ever lost, whichever path it took.
type JournalService interface {
	// CreateWell validates the well and writes it through the dual path:
	// straight to the server when online, into the pending cache when
	// offline or when the server turns out to be unreachable mid-call.
	// Returns the stored record; a server rejection comes back wrapped in
	// ErrRecordRejected and nothing is queued.
	CreateWell(ctx context.Context, well models.Well) (models.Well, error)

	// CreateLayer is CreateWell for a geological layer. The layer's well
	// reference is taken as given; re-parenting queued layers is the
	// server's concern, not the client's.
	CreateLayer(ctx context.Context, layer models.Layer) (models.Layer, error)

	// LoadWells returns the merged well listing: server records followed by
	// locally pending ones. When the server is unreachable the listing
	// degrades to pending records only, with a warning notice.
	LoadWells(ctx context.Context) ([]models.Well, error)

	// LoadLayers returns the merged layer listing of one well, identified
	// by the id the caller holds (server id or local id of a pending well).
	LoadLayers(ctx context.Context, wellID string) ([]models.Layer, error)

	// HandleConnectivityChange is the only state transition point. An
	// offline-to-online transition triggers the drain: pending wells first,
	// then pending layers, sequentially, each record's outcome isolated
	// from the rest.
	HandleConnectivityChange(ctx context.Context, online bool) error

	// State reports the current announced connectivity state.
	State() State
}
