// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// tomlConfig mirrors StructuredConfig for TOML files. BurntSushi/toml decodes
// duration strings such as "5m" directly into time.Duration.
type tomlConfig struct {
	App struct {
		HashKey string `toml:"hash_key"`
		Token   string `toml:"token"`
		UserID  int64  `toml:"user_id"`
		Version string `toml:"version"`
	} `toml:"app"`

	Storage struct {
		DB struct {
			DSN string `toml:"dsn"`
		} `toml:"db"`
	} `toml:"storage"`

	Adapter struct {
		HTTPAddress    string        `toml:"http_address"`
		RequestTimeout time.Duration `toml:"request_timeout"`
		HealthPath     string        `toml:"health_path"`
	} `toml:"adapter"`

	Workers struct {
		SyncInterval    time.Duration `toml:"sync_interval"`
		ProbeInterval   time.Duration `toml:"probe_interval"`
		DispatchTimeout time.Duration `toml:"dispatch_timeout"`
		MinPassSpacing  time.Duration `toml:"min_pass_spacing"`
		MaxRetries      int           `toml:"max_retries"`
		BackoffBase     time.Duration `toml:"backoff_base"`
		MaxBackoff      time.Duration `toml:"max_backoff"`
		WakeDir         string        `toml:"wake_dir"`
	} `toml:"workers"`

	Control struct {
		HTTPAddress string `toml:"http_address"`
	} `toml:"control"`

	Health Health `toml:"health"`

	Log struct {
		FilePath string `toml:"file_path"`
		Level    string `toml:"level"`
	} `toml:"log"`
}

func parseTOML(path string) (*StructuredConfig, error) {
	var fileCfg tomlConfig
	md, err := toml.DecodeFile(path, &fileCfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown toml config keys: %v", undecoded)
	}

	return &StructuredConfig{
		App: App{
			HashKey: fileCfg.App.HashKey,
			Token:   fileCfg.App.Token,
			UserID:  fileCfg.App.UserID,
			Version: fileCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: fileCfg.Adapter.RequestTimeout,
			HealthPath:     fileCfg.Adapter.HealthPath,
		},
		Workers: Workers{
			SyncInterval:    fileCfg.Workers.SyncInterval,
			ProbeInterval:   fileCfg.Workers.ProbeInterval,
			DispatchTimeout: fileCfg.Workers.DispatchTimeout,
			MinPassSpacing:  fileCfg.Workers.MinPassSpacing,
			MaxRetries:      fileCfg.Workers.MaxRetries,
			BackoffBase:     fileCfg.Workers.BackoffBase,
			MaxBackoff:      fileCfg.Workers.MaxBackoff,
			WakeDir:         fileCfg.Workers.WakeDir,
		},
		Control: Control{HTTPAddress: fileCfg.Control.HTTPAddress},
		Health:  fileCfg.Health,
		Log: Log{
			FilePath: fileCfg.Log.FilePath,
			Level:    fileCfg.Log.Level,
		},
	}, nil
}
