// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "hash_key": "hmac", "token": "bearer", "user_id": 9, "version": "0.3.0" },
		"storage": { "db": { "dsn": "/data/queue.db" } },
		"adapter": {
			"http_address": "https://api.example.com",
			"request_timeout": "8s",
			"health_path": "/up"
		},
		"workers": {
			"sync_interval": "10m",
			"probe_interval": "30s",
			"dispatch_timeout": 5000000000,
			"min_pass_spacing": "1s",
			"max_retries": 4,
			"backoff_base": "20s",
			"max_backoff": "2h",
			"wake_dir": "/data/wake"
		},
		"control": { "http_address": "localhost:7000" },
		"health": {
			"warn_pending": 5,
			"critical_pending": 50,
			"warn_failed": 1,
			"critical_failed": 10,
			"warn_success_rate": 0.9,
			"warn_stale_factor": 2,
			"critical_stale_factor": 4,
			"window": 20
		},
		"log": { "file_path": "/data/client.log", "level": "error" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, App{HashKey: "hmac", Token: "bearer", UserID: 9, Version: "0.3.0"}, cfg.App)
	assert.Equal(t, "/data/queue.db", cfg.Storage.DB.DSN)
	assert.Equal(t, Adapter{HTTPAddress: "https://api.example.com", RequestTimeout: 8 * time.Second, HealthPath: "/up"}, cfg.Adapter)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 30*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, 5*time.Second, cfg.Workers.DispatchTimeout)
	assert.Equal(t, time.Second, cfg.Workers.MinPassSpacing)
	assert.Equal(t, 4, cfg.Workers.MaxRetries)
	assert.Equal(t, 20*time.Second, cfg.Workers.BackoffBase)
	assert.Equal(t, 2*time.Hour, cfg.Workers.MaxBackoff)
	assert.Equal(t, "/data/wake", cfg.Workers.WakeDir)
	assert.Equal(t, "localhost:7000", cfg.Control.HTTPAddress)
	assert.Equal(t, 20, cfg.Health.Window)
	assert.InDelta(t, 0.9, cfg.Health.WarnSuccessRate, 1e-9)
	assert.Equal(t, Log{FilePath: "/data/client.log", Level: "error"}, cfg.Log)
	assert.Empty(t, cfg.FilePath, "file path must not recurse")
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers":{"sync_interval":"often"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(raw))

	var d Duration
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))
}
