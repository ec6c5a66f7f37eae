package models

// SyncStatus marks whether a record has been confirmed by the journal server.
// Records held in the local cache are always pending; the server is the only
// party that flips a record to synced.
type SyncStatus string

const (
	// SyncPending marks a record created locally that the server has not
	// yet acknowledged.
	SyncPending SyncStatus = "pending"

	// SyncSynced marks a record that exists on the server. Such records are
	// never persisted in the local cache.
	SyncSynced SyncStatus = "synced"
)
