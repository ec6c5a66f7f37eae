package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port] or full URL
//	-d local SQLite database path
//	-c/-config json file path with configs
//	-csrf-token CSRF token for mutating requests
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-notice-duration on-screen notice duration (e.g., "4s")
//	-probe-interval connectivity probe interval (e.g., "15s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var csrfToken string
	var requestTimeout time.Duration
	var noticeDuration time.Duration
	var probeInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Journal server address host:port or URL")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&csrfToken, "csrf-token", "", "CSRF token for mutating requests")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.DurationVar(&noticeDuration, "notice-duration", 0, "Notice display duration (e.g., 4s)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			CSRFToken:      csrfToken,
			NoticeDuration: noticeDuration,
		},
		Server: Server{
			Address:        serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers:      Workers{ProbeInterval: probeInterval},
		JSONFilePath: jsonConfigPath,
	}
}
