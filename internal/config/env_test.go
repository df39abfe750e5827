// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.toml",

		"APP_HASH_KEY": "hash_secret",
		"APP_TOKEN":    "bearer",
		"APP_USER_ID":  "42",
		"APP_VERSION":  "1.2.3",

		"STORAGE_DB_DATABASE_URI": "/var/lib/quiz-sync/queue.db",

		"ADAPTER_ADDRESS":         "https://api.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "7s",
		"ADAPTER_HEALTH_PATH":     "/ping",

		"WORKERS_SYNC_INTERVAL":    "2m",
		"WORKERS_PROBE_INTERVAL":   "20s",
		"WORKERS_DISPATCH_TIMEOUT": "12s",
		"WORKERS_MIN_PASS_SPACING": "3s",
		"WORKERS_MAX_RETRIES":      "5",
		"WORKERS_BACKOFF_BASE":     "10s",
		"WORKERS_MAX_BACKOFF":      "10m",
		"WORKERS_WAKE_DIR":         "/run/quiz-sync/wake",

		"CONTROL_ADDRESS": "127.0.0.1:9999",

		"HEALTH_WARN_PENDING":          "10",
		"HEALTH_CRITICAL_PENDING":      "100",
		"HEALTH_WARN_FAILED":           "2",
		"HEALTH_CRITICAL_FAILED":       "20",
		"HEALTH_WARN_SUCCESS_RATE":     "0.75",
		"HEALTH_WARN_STALE_FACTOR":     "2",
		"HEALTH_CRITICAL_STALE_FACTOR": "8",
		"HEALTH_WINDOW":                "50",

		"LOG_FILE_PATH": "/var/log/quiz-sync.log",
		"LOG_LEVEL":     "warn",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.toml", cfg.FilePath)

	assert.Equal(t, "hash_secret", cfg.App.HashKey)
	assert.Equal(t, "bearer", cfg.App.Token)
	assert.Equal(t, int64(42), cfg.App.UserID)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "/var/lib/quiz-sync/queue.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/ping", cfg.Adapter.HealthPath)

	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 20*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, 12*time.Second, cfg.Workers.DispatchTimeout)
	assert.Equal(t, 3*time.Second, cfg.Workers.MinPassSpacing)
	assert.Equal(t, 5, cfg.Workers.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.Workers.BackoffBase)
	assert.Equal(t, 10*time.Minute, cfg.Workers.MaxBackoff)
	assert.Equal(t, "/run/quiz-sync/wake", cfg.Workers.WakeDir)

	assert.Equal(t, "127.0.0.1:9999", cfg.Control.HTTPAddress)

	assert.Equal(t, Health{
		WarnPending:         10,
		CriticalPending:     100,
		WarnFailed:          2,
		CriticalFailed:      20,
		WarnSuccessRate:     0.75,
		WarnStaleFactor:     2,
		CriticalStaleFactor: 8,
		Window:              50,
	}, cfg.Health)

	assert.Equal(t, "/var/log/quiz-sync.log", cfg.Log.FilePath)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("APP_TOKEN", "only-token")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only-token", cfg.App.Token)
	assert.Zero(t, cfg.Workers.SyncInterval)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidInteger(t *testing.T) {
	t.Setenv("APP_USER_ID", "forty-two")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
