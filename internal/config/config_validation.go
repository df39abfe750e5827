// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") || strings.Contains(cfg.Storage.DB.DSN, "mode=memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.SyncInterval <= 0 || w.ProbeInterval <= 0 || w.DispatchTimeout <= 0 || w.MinPassSpacing < 0 {
		return ErrInvalidWorkerConfigs
	}
	if w.MaxRetries < 0 || w.BackoffBase <= 0 || w.MaxBackoff < w.BackoffBase {
		return fmt.Errorf("%w: backoff %s..%s with %d retries", ErrInvalidWorkerConfigs, w.BackoffBase, w.MaxBackoff, w.MaxRetries)
	}

	if cfg.App.UserID == 0 && cfg.App.Token == "" {
		return ErrInvalidAppConfigs
	}

	h := cfg.Health
	if h.Window <= 0 || h.WarnSuccessRate < 0 || h.WarnSuccessRate > 1 {
		return ErrInvalidHealthConfigs
	}
	if h.CriticalPending < h.WarnPending || h.CriticalFailed < h.WarnFailed || h.CriticalStaleFactor < h.WarnStaleFactor {
		return ErrInvalidHealthConfigs
	}

	return nil
}
