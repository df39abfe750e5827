// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HealthStatus is the coarse sync health shown to the user.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)

// SyncStatus is a point-in-time snapshot of the engine, returned by GetStatus.
type SyncStatus struct {
	PendingCount int  `json:"pending_count"`
	FailedCount  int  `json:"failed_count"`
	IsOnline     bool `json:"is_online"`

	// IsSyncing is true only while a pass is running and the device is online.
	IsSyncing bool `json:"is_syncing"`

	// LastSyncTime is the end of the most recent completed pass, nil if none.
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`

	// LastSyncAgeSeconds is the age of LastSyncTime, zero when there is none.
	LastSyncAgeSeconds int64 `json:"last_sync_age_seconds,omitempty"`

	HealthStatus HealthStatus `json:"health_status"`

	// SuccessRate is the share of successful dispatches in the recent window.
	// It is 1 when the window is empty.
	SuccessRate float64 `json:"success_rate"`

	// VolatileCount is the number of queue transitions (accepted actions,
	// retry updates, moves to failed, commits) held in memory because the
	// durable store rejected the write.
	VolatileCount int `json:"volatile_count,omitempty"`

	// StoreError is the last durable store failure, cleared once the store
	// accepts writes again and nothing is left in memory.
	StoreError string `json:"store_error,omitempty"`
}

// ManualSyncResult is returned by a user-triggered sync.
type ManualSyncResult struct {
	Success     bool   `json:"success"`
	SyncedCount int    `json:"synced_count"`
	Message     string `json:"message"`
}

// PassResult summarises a single sync pass.
type PassResult struct {
	Reason     string    `json:"reason"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Retried   int `json:"retried"`
	Failed    int `json:"failed"`

	// Skipped counts actions whose backoff window had not elapsed.
	Skipped int `json:"skipped"`

	// Aborted is set when the pass stopped early because connectivity was
	// lost or the engine was shutting down.
	Aborted bool `json:"aborted"`
}

// Clean reports whether every attempted action succeeded and the pass ran to
// the end.
func (r PassResult) Clean() bool {
	return !r.Aborted && r.Retried == 0 && r.Failed == 0
}
