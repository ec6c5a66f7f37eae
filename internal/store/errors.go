package store

import "errors"

var (
	// ErrStorageUnavailable indicates that the local SQLite cache could not
	// be opened or reached. A write falls through to a user notice; a read
	// with no server fallback escalates to a fatal display error.
	ErrStorageUnavailable = errors.New("local storage unavailable")
)
