// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only host no port",
			addr:     NetAddress{Host: "localhost", Port: 0},
			expected: "localhost:0",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectError:  false,
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectError:  false,
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "negative port",
			input:       "localhost:-1",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr.Host, addr.Host)
				assert.Equal(t, tt.expectedAddr.Port, addr.Port)
			}
		})
	}
}

// TestParseFlags covers every client flag.
func TestParseFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:8090",
		"-r", "https://api.example.com",
		"-health-path", "/healthz",
		"-d", "/tmp/queue.db",
		"-config", "/etc/quiz-sync.toml",
		"-hash-key", "hmac",
		"-token", "bearer",
		"-user-id", "17",
		"-request-timeout", "4s",
		"-sync-interval", "1m",
		"-probe-interval", "9s",
		"-dispatch-timeout", "20s",
		"-min-pass-spacing", "2s",
		"-max-retries", "6",
		"-backoff-base", "15s",
		"-max-backoff", "30m",
		"-wake-dir", "/tmp/wake",
		"-log-file", "/tmp/client.log",
		"-log-level", "debug",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8090", cfg.Control.HTTPAddress)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/healthz", cfg.Adapter.HealthPath)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/queue.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/quiz-sync.toml", cfg.FilePath)
	assert.Equal(t, "hmac", cfg.App.HashKey)
	assert.Equal(t, "bearer", cfg.App.Token)
	assert.Equal(t, int64(17), cfg.App.UserID)
	assert.Equal(t, Workers{
		SyncInterval:    time.Minute,
		ProbeInterval:   9 * time.Second,
		DispatchTimeout: 20 * time.Second,
		MinPassSpacing:  2 * time.Second,
		MaxRetries:      6,
		BackoffBase:     15 * time.Second,
		MaxBackoff:      30 * time.Minute,
		WakeDir:         "/tmp/wake",
	}, cfg.Workers)
	assert.Equal(t, "/tmp/client.log", cfg.Log.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "client.json"})
	require.NoError(t, err)
	assert.Equal(t, "client.json", cfg.FilePath)
}

func TestParseFlags_NoArgsLeavesZeroValues(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "example.com:80"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect IP-address provided")
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-sync-interval", "soon"})
	assert.Error(t, err)
}


// TestNetAddress_SetAndString tests the round-trip of Set and String
func TestNetAddress_SetAndString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"localhost:8080", "localhost:8080"},
		{"127.0.0.1:9090", "127.0.0.1:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}
