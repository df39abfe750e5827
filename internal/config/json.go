// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON tags. Durations
// accept either Go duration strings ("30s") or integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
		Token   string `json:"token"`
		UserID  int64  `json:"user_id"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		HealthPath     string   `json:"health_path"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		ProbeInterval   Duration `json:"probe_interval"`
		DispatchTimeout Duration `json:"dispatch_timeout"`
		MinPassSpacing  Duration `json:"min_pass_spacing"`
		MaxRetries      int      `json:"max_retries"`
		BackoffBase     Duration `json:"backoff_base"`
		MaxBackoff      Duration `json:"max_backoff"`
		WakeDir         string   `json:"wake_dir"`
	} `json:"workers,omitempty"`

	Control struct {
		HTTPAddress string `json:"http_address"`
	} `json:"control,omitempty"`

	Health struct {
		WarnPending         int     `json:"warn_pending"`
		CriticalPending     int     `json:"critical_pending"`
		WarnFailed          int     `json:"warn_failed"`
		CriticalFailed      int     `json:"critical_failed"`
		WarnSuccessRate     float64 `json:"warn_success_rate"`
		WarnStaleFactor     float64 `json:"warn_stale_factor"`
		CriticalStaleFactor float64 `json:"critical_stale_factor"`
		Window              int     `json:"window"`
	} `json:"health,omitempty"`

	Log struct {
		FilePath string `json:"file_path"`
		Level    string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey: jsonCfg.App.HashKey,
			Token:   jsonCfg.App.Token,
			UserID:  jsonCfg.App.UserID,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			HealthPath:     jsonCfg.Adapter.HealthPath,
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			ProbeInterval:   time.Duration(jsonCfg.Workers.ProbeInterval),
			DispatchTimeout: time.Duration(jsonCfg.Workers.DispatchTimeout),
			MinPassSpacing:  time.Duration(jsonCfg.Workers.MinPassSpacing),
			MaxRetries:      jsonCfg.Workers.MaxRetries,
			BackoffBase:     time.Duration(jsonCfg.Workers.BackoffBase),
			MaxBackoff:      time.Duration(jsonCfg.Workers.MaxBackoff),
			WakeDir:         jsonCfg.Workers.WakeDir,
		},
		Control: Control{
			HTTPAddress: jsonCfg.Control.HTTPAddress,
		},
		Health: Health{
			WarnPending:         jsonCfg.Health.WarnPending,
			CriticalPending:     jsonCfg.Health.CriticalPending,
			WarnFailed:          jsonCfg.Health.WarnFailed,
			CriticalFailed:      jsonCfg.Health.CriticalFailed,
			WarnSuccessRate:     jsonCfg.Health.WarnSuccessRate,
			WarnStaleFactor:     jsonCfg.Health.WarnStaleFactor,
			CriticalStaleFactor: jsonCfg.Health.CriticalStaleFactor,
			Window:              jsonCfg.Health.Window,
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
			Level:    jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
