// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/network"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// SyncEngine is the producer-facing API of the offline sync engine. It owns
// the queue, the connectivity view and the pass lifecycle of one user.
type SyncEngine interface {
	// Start loads persisted sync metadata and launches the scheduler loop.
	// The engine accepts Enqueue calls before Start.
	Start(ctx context.Context) error

	// Stop halts the scheduler and blocks until it has exited. An in-flight
	// store write always completes.
	Stop()

	// Enqueue validates payload, stores the action durably and, when online,
	// requests a pass. It fails only for invalid input: when the store
	// rejects the write the action is kept in memory and the ack reports
	// Durable=false.
	Enqueue(ctx context.Context, actionType models.ActionType, payload json.RawMessage) (models.EnqueueAck, error)

	// GetStatus returns counts, connectivity, pass state and health.
	GetStatus(ctx context.Context) models.SyncStatus

	// ManualSync runs a pass synchronously, ignoring backoff windows and
	// throttling, and reports how many actions were applied.
	ManualSync(ctx context.Context) models.ManualSyncResult

	// ClearFailed discards the failed bucket and returns how many actions
	// were dropped.
	ClearFailed(ctx context.Context) (int, error)

	// RetryFailed moves every failed action back to the pending queue with a
	// zero retry count, requests a forced pass and returns how many moved.
	RetryFailed(ctx context.Context) (int, error)

	// ForceSync requests a pass that bypasses throttling and backoff windows.
	ForceSync()

	// ListPending returns the pending queue, oldest first.
	ListPending(ctx context.Context) ([]models.PendingAction, error)

	// ListFailed returns the failed bucket, oldest first.
	ListFailed(ctx context.Context) ([]models.FailedAction, error)

	// HandleHostEvent forwards a host connectivity event (went-online,
	// went-offline, wake-signal or SYNC_PENDING_DATA) to the monitor.
	HandleHostEvent(ctx context.Context, eventType string) error
}

// ConnectivityMonitor is the engine's view of the network monitor.
type ConnectivityMonitor interface {
	IsOnline() bool
	OnTransition(fn func(online bool))
	OnWake(fn func())
	Publish(ev network.Event) bool
}

// ActionHandler applies one action type to the remote system.
//
// Apply must honour ctx and perform at most one remote call. The returned
// error, if any, is recorded as the action's last error.
type ActionHandler interface {
	Apply(ctx context.Context, action models.PendingAction) (models.Outcome, error)
}

// ActionHandlerFunc adapts a function to ActionHandler.
type ActionHandlerFunc func(ctx context.Context, action models.PendingAction) (models.Outcome, error)

// Apply calls f(ctx, action).
func (f ActionHandlerFunc) Apply(ctx context.Context, action models.PendingAction) (models.Outcome, error) {
	return f(ctx, action)
}

// RetryPolicy decides how failures are classified, how long a transiently
// failed action waits and when it gives up.
type RetryPolicy interface {
	// Classify maps a handler error to an outcome.
	Classify(err error) models.Outcome

	// Backoff is the wait before the next attempt after retryCount failures.
	Backoff(retryCount int) time.Duration

	// Exhausted reports whether retryCount failures exceed the retry limit.
	Exhausted(retryCount int) bool
}

// passRunner is the part of the executor the scheduler drives.
type passRunner interface {
	RunPass(ctx context.Context, reason string, force bool) (models.PassResult, error)
	IsSyncing() bool
}
