package service

import "errors"

var (
	// ErrRecordRejected marks a server-side rejection of a create request.
	// A rejected record is never queued locally: the server has seen it and
	// said no, so replaying it later would fail the same way.
	ErrRecordRejected = errors.New("record rejected by server")
)
