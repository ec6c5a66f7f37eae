// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the drilling
// journal client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the CSRF token handed
	// out by the journal server and display timings.
	App App `envPrefix:"APP_"`

	// Server holds the address and timeout settings for the remote
	// drilling-log REST API.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// CSRFToken is the cross-site-request-forgery token attached to every
	// mutating request sent to the journal server. It is issued by the
	// server session the client operates under.
	// Env: APP_CSRF_TOKEN
	CSRFToken string `env:"CSRF_TOKEN"`

	// NoticeDuration is how long a non-blocking user notice stays on
	// screen before it is dismissed (e.g. "4s").
	// Env: APP_NOTICE_DURATION
	NoticeDuration time.Duration `env:"NOTICE_DURATION"`
}

// Server holds network settings for the remote drilling-log API.
type Server struct {
	// Address is the base address of the journal server, in
	// "host:port" or full URL format (e.g. "journal.example.org:8000").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "10s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path holding the pending-record cache
	// (e.g. "journal.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ProbeInterval defines how often the connectivity source probes the
	// journal server to detect online/offline transitions.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}
