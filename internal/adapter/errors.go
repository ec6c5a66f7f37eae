package adapter

import "errors"

var (
	// ErrTransport marks a network-level failure: the server was never
	// reached or the request timed out. The coordinator treats it as a
	// signal to fall back to the local cache, never as a rejection.
	ErrTransport = errors.New("transport failure")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
