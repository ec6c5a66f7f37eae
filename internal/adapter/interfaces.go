// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

// Package adapter provides transport-layer abstractions for communicating
// with the drilling journal server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// coordinator from the REST/JSON wire protocol. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] for transport-agnostic error handling; [ErrTransport]
// in particular separates "the server was unreachable" from "the server said
// no", which drives the offline fallback.
package adapter

import (
	"context"

	"github.com/amekhanov/drill-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the drilling journal server.
// Implementations are responsible for serialisation, CSRF header management,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// GetWells fetches the caller's wells from the server. Returns a
	// wrapped [ErrTransport] when the server cannot be reached, or a
	// status-mapped error on a non-2xx response.
	GetWells(ctx context.Context) ([]models.Well, error)

	// CreateWell sends a new well to the server. The well's LocalID, when
	// present, travels as offline_id so the server can de-duplicate a
	// replayed request. Returns the created record as the server sees it.
	CreateWell(ctx context.Context, well models.Well) (models.Well, error)

	// GetLayers fetches the layers of one well, identified by its server
	// id (decimal string).
	GetLayers(ctx context.Context, wellID string) ([]models.Layer, error)

	// CreateLayer sends a new layer to the server, carrying LocalID as the
	// offline_id correlation token like CreateWell does.
	CreateLayer(ctx context.Context, layer models.Layer) (models.Layer, error)

	// Ping performs a lightweight reachability check against the server's
	// health endpoint. Used by the connectivity source, never by the
	// coordinator directly.
	Ping(ctx context.Context) error
}
