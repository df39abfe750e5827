// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-quiz-sync client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON or TOML file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and integrity settings: the bearer token used
	// against the remote API, the user the queue belongs to and the HMAC key.
	App App `envPrefix:"APP_"`

	// Storage holds the local durable store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API endpoint and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds timings and limits for the sync scheduler, the
	// connectivity prober and the wake-signal watcher.
	Workers Workers `envPrefix:"WORKERS_"`

	// Control holds the local control API listener settings.
	Control Control `envPrefix:"CONTROL_"`

	// Health holds the thresholds used to grade sync health.
	Health Health `envPrefix:"HEALTH_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or TOML configuration file,
	// chosen by extension. Populated via the CONFIG environment variable or
	// the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds identity settings.
type App struct {
	// HashKey signs outgoing request bodies (X-Hash header). Optional.
	HashKey string `env:"HASH_KEY"`

	// Token is the bearer token presented to the remote API.
	Token string `env:"TOKEN"`

	// UserID owns the local queue. When zero it is taken from the token subject.
	UserID int64 `env:"USER_ID"`

	// Version is reported by the control API.
	Version string `env:"VERSION"`
}

// Storage groups local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is a file path or a file: URI understood by mattn/go-sqlite3.
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the remote API settings.
type Adapter struct {
	// HTTPAddress is the base URL of the remote backend.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthPath is probed to decide whether the backend is reachable.
	HealthPath string `env:"HEALTH_PATH"`
}

// Workers holds background job settings.
type Workers struct {
	SyncInterval    time.Duration `env:"SYNC_INTERVAL"`
	ProbeInterval   time.Duration `env:"PROBE_INTERVAL"`
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT"`
	MinPassSpacing  time.Duration `env:"MIN_PASS_SPACING"`
	MaxRetries      int           `env:"MAX_RETRIES"`
	BackoffBase     time.Duration `env:"BACKOFF_BASE"`
	MaxBackoff      time.Duration `env:"MAX_BACKOFF"`

	// WakeDir is watched for wake-signal message files. Empty disables the watcher.
	WakeDir string `env:"WAKE_DIR"`
}

// Control holds the local control API settings.
type Control struct {
	HTTPAddress string `env:"ADDRESS"`
}

// Health holds sync health thresholds.
type Health struct {
	WarnPending         int     `env:"WARN_PENDING" toml:"warn_pending"`
	CriticalPending     int     `env:"CRITICAL_PENDING" toml:"critical_pending"`
	WarnFailed          int     `env:"WARN_FAILED" toml:"warn_failed"`
	CriticalFailed      int     `env:"CRITICAL_FAILED" toml:"critical_failed"`
	WarnSuccessRate     float64 `env:"WARN_SUCCESS_RATE" toml:"warn_success_rate"`
	WarnStaleFactor     float64 `env:"WARN_STALE_FACTOR" toml:"warn_stale_factor"`
	CriticalStaleFactor float64 `env:"CRITICAL_STALE_FACTOR" toml:"critical_stale_factor"`
	Window              int     `env:"WINDOW" toml:"window"`
}

// Log holds logging settings.
type Log struct {
	// FilePath enables a rotated log file instead of stdout.
	FilePath string `env:"FILE_PATH"`
	Level    string `env:"LEVEL"`
}

// GetStructuredConfig loads the configuration from the process environment,
// the command-line arguments and the optional config file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
