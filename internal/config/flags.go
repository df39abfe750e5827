// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair accepted by the -control-address flag.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the client command-line arguments into a partial
// StructuredConfig. Unset flags leave their fields zero so that the merge
// falls through to the next source.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("quiz-sync", flag.ContinueOnError)

	var controlAddress NetAddress
	var remoteAddress string
	var healthPath string
	var databaseDSN string
	var configPath string
	var hashKey string
	var token string
	var userID int64
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var probeInterval time.Duration
	var dispatchTimeout time.Duration
	var minPassSpacing time.Duration
	var maxRetries int
	var backoffBase time.Duration
	var maxBackoff time.Duration
	var wakeDir string
	var logFile string
	var logLevel string

	fs.Var(&controlAddress, "a", "Control API net address host:port")
	fs.StringVar(&remoteAddress, "r", "", "Remote API base URL")
	fs.StringVar(&healthPath, "health-path", "", "Remote health endpoint path")
	fs.StringVar(&databaseDSN, "d", "", "Local SQLite database DSN")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Request body HMAC key")
	fs.StringVar(&token, "token", "", "Remote API bearer token")
	fs.Int64Var(&userID, "user-id", 0, "Owner of the local queue")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 10s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 15s)")
	fs.DurationVar(&dispatchTimeout, "dispatch-timeout", 0, "Per-action dispatch timeout")
	fs.DurationVar(&minPassSpacing, "min-pass-spacing", 0, "Minimum spacing between automatic passes")
	fs.IntVar(&maxRetries, "max-retries", 0, "Transient failures tolerated before an action fails")
	fs.DurationVar(&backoffBase, "backoff-base", 0, "Initial retry backoff")
	fs.DurationVar(&maxBackoff, "max-backoff", 0, "Retry backoff ceiling")
	fs.StringVar(&wakeDir, "wake-dir", "", "Directory watched for wake-signal files")
	fs.StringVar(&logFile, "log-file", "", "Rotated log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			Token:   token,
			UserID:  userID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
			HealthPath:     healthPath,
		},
		Workers: Workers{
			SyncInterval:    syncInterval,
			ProbeInterval:   probeInterval,
			DispatchTimeout: dispatchTimeout,
			MinPassSpacing:  minPassSpacing,
			MaxRetries:      maxRetries,
			BackoffBase:     backoffBase,
			MaxBackoff:      maxBackoff,
			WakeDir:         wakeDir,
		},
		Control: Control{
			HTTPAddress: controlAddress.String(),
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
		},
		FilePath: configPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
