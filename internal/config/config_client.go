package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// NoticeDuration is how long a non-blocking notice stays on screen.
	NoticeDuration time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerAddress is the base address of the drilling-log REST API.
	ServerAddress string
	// CSRFToken is attached to every mutating request.
	CSRFToken string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the pending-record cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProbeInterval defines how often the connectivity source probes the
	// journal server.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address, token and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// Defaults applied by GetClientConfig when neither environment, flags nor the
// JSON file set a value.
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultNoticeDuration = 4 * time.Second
	DefaultProbeInterval  = 15 * time.Second
)

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It merges environment variables, command-line flags and an optional JSON
// file via the internal builder, maps only the fields relevant to the client
// runtime, fills in defaults for the timing knobs, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			NoticeDuration: cfg.App.NoticeDuration,
		},
		Adapter: ClientAdapter{
			ServerAddress:  cfg.Server.Address,
			CSRFToken:      cfg.App.CSRFToken,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{ProbeInterval: cfg.Workers.ProbeInterval},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.App.NoticeDuration == 0 {
		clientCfg.App.NoticeDuration = DefaultNoticeDuration
	}
	if clientCfg.Workers.ProbeInterval == 0 {
		clientCfg.Workers.ProbeInterval = DefaultProbeInterval
	}

	return clientCfg, clientCfg.validate()
}
