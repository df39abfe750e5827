// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds identity settings for the sync client.
type ClientApp struct {
	// HashKey is the HMAC key used to sign outgoing request bodies.
	HashKey string
	// Token is the bearer token presented to the remote API.
	Token string
	// UserID owns the local queue. Zero means "derive it from Token".
	UserID int64
	// Version is the client version reported by the control API.
	Version string
}

// ClientAdapter holds remote API settings.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote backend.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// HealthPath is the endpoint probed by the connectivity prober.
	HealthPath string
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains scheduler, prober and retry settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic trigger fires.
	SyncInterval time.Duration
	// ProbeInterval defines how often connectivity is probed.
	ProbeInterval time.Duration
	// DispatchTimeout bounds a single remote apply.
	DispatchTimeout time.Duration
	// MinPassSpacing is the minimum gap between two automatic passes.
	MinPassSpacing time.Duration
	// MaxRetries is the number of transient failures tolerated per action.
	MaxRetries int
	// BackoffBase is the delay after the first transient failure.
	BackoffBase time.Duration
	// MaxBackoff caps the exponential backoff.
	MaxBackoff time.Duration
	// WakeDir is watched for wake-signal files; empty disables the watcher.
	WakeDir string
}

// ClientControl holds the local control API settings.
type ClientControl struct {
	// HTTPAddress is the host:port the control API listens on.
	HTTPAddress string
}

// ClientHealth holds the thresholds that grade sync health.
type ClientHealth struct {
	WarnPending         int
	CriticalPending     int
	WarnFailed          int
	CriticalFailed      int
	WarnSuccessRate     float64
	WarnStaleFactor     float64
	CriticalStaleFactor float64
	// Window is the number of recent dispatch outcomes in the success rate.
	Window int
}

// ClientLog holds log output settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains identity settings.
	App ClientApp
	// Adapter contains the remote API address and timeouts.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Control contains the control API listener.
	Control ClientControl
	// Health contains health thresholds.
	Health ClientHealth
	// Log contains log output settings.
	Log ClientLog
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration of the running process.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Token:   cfg.App.Token,
			UserID:  cfg.App.UserID,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HealthPath:     cfg.Adapter.HealthPath,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			ProbeInterval:   cfg.Workers.ProbeInterval,
			DispatchTimeout: cfg.Workers.DispatchTimeout,
			MinPassSpacing:  cfg.Workers.MinPassSpacing,
			MaxRetries:      cfg.Workers.MaxRetries,
			BackoffBase:     cfg.Workers.BackoffBase,
			MaxBackoff:      cfg.Workers.MaxBackoff,
			WakeDir:         cfg.Workers.WakeDir,
		},
		Control: ClientControl{
			HTTPAddress: cfg.Control.HTTPAddress,
		},
		Health: ClientHealth{
			WarnPending:         cfg.Health.WarnPending,
			CriticalPending:     cfg.Health.CriticalPending,
			WarnFailed:          cfg.Health.WarnFailed,
			CriticalFailed:      cfg.Health.CriticalFailed,
			WarnSuccessRate:     cfg.Health.WarnSuccessRate,
			WarnStaleFactor:     cfg.Health.WarnStaleFactor,
			CriticalStaleFactor: cfg.Health.CriticalStaleFactor,
			Window:              cfg.Health.Window,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
