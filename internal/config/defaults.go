// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultDSN             = "quiz-sync.db"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultHealthPath      = "/api/v1/health"
	DefaultSyncInterval    = 5 * time.Minute
	DefaultProbeInterval   = 15 * time.Second
	DefaultDispatchTimeout = 30 * time.Second
	DefaultMinPassSpacing  = 5 * time.Second
	DefaultMaxRetries      = 3
	DefaultBackoffBase     = 30 * time.Second
	DefaultMaxBackoff      = time.Hour
	DefaultControlAddress  = "localhost:8088"
	DefaultLogLevel        = "info"
)

const (
	DefaultWarnPending         = 50
	DefaultCriticalPending     = 500
	DefaultWarnFailed          = 1
	DefaultCriticalFailed      = 25
	DefaultWarnSuccessRate     = 0.8
	DefaultWarnStaleFactor     = 3
	DefaultCriticalStaleFactor = 12
	DefaultHealthWindow        = 100
)

// DefaultClientHealth returns the default health thresholds.
func DefaultClientHealth() ClientHealth {
	return ClientHealth{
		WarnPending:         DefaultWarnPending,
		CriticalPending:     DefaultCriticalPending,
		WarnFailed:          DefaultWarnFailed,
		CriticalFailed:      DefaultCriticalFailed,
		WarnSuccessRate:     DefaultWarnSuccessRate,
		WarnStaleFactor:     DefaultWarnStaleFactor,
		CriticalStaleFactor: DefaultCriticalStaleFactor,
		Window:              DefaultHealthWindow,
	}
}

// defaultConfig is merged last, so it only fills fields no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			HealthPath:     DefaultHealthPath,
		},
		Workers: Workers{
			SyncInterval:    DefaultSyncInterval,
			ProbeInterval:   DefaultProbeInterval,
			DispatchTimeout: DefaultDispatchTimeout,
			MinPassSpacing:  DefaultMinPassSpacing,
			MaxRetries:      DefaultMaxRetries,
			BackoffBase:     DefaultBackoffBase,
			MaxBackoff:      DefaultMaxBackoff,
		},
		Control: Control{
			HTTPAddress: DefaultControlAddress,
		},
		Health: Health{
			WarnPending:         DefaultWarnPending,
			CriticalPending:     DefaultCriticalPending,
			WarnFailed:          DefaultWarnFailed,
			CriticalFailed:      DefaultCriticalFailed,
			WarnSuccessRate:     DefaultWarnSuccessRate,
			WarnStaleFactor:     DefaultWarnStaleFactor,
			CriticalStaleFactor: DefaultCriticalStaleFactor,
			Window:              DefaultHealthWindow,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
