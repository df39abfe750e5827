// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the durable local store of the sync engine: the pending
// action queue, the failed bucket and small per-user blobs, all in one
// SQLite file.
//
// Every state transition of an action is a single transaction, so a crash
// leaves each action either fully in its old state or fully in its new one.
// Removing an action from the pending queue is the commit point of a
// successful dispatch.
package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quiz-sync/models"
)

// ActionRepository persists queued actions for one or more users.
//
// Pending actions are returned in FIFO order of their Seq, which the store
// assigns on insertion and never reuses.
type ActionRepository interface {
	// Append inserts action at the tail of the pending queue and returns it
	// with its assigned Seq. It returns only after the write is durable.
	Append(ctx context.Context, action models.PendingAction) (models.PendingAction, error)

	// Load returns the pending queue of userID, oldest first.
	Load(ctx context.Context, userID int64) ([]models.PendingAction, error)

	// Persist atomically replaces the pending queue of userID with queue,
	// keeping the slice order. Actions that carry a Seq keep it.
	Persist(ctx context.Context, userID int64, queue []models.PendingAction) error

	// Remove deletes a pending action. It returns ErrActionNotFound when the
	// action is not pending.
	Remove(ctx context.Context, userID int64, id string) error

	// MarkRetry records a transient failure: the new retry count, the
	// earliest time of the next attempt and the error text. It returns
	// ErrActionNotFound when the action is not pending.
	MarkRetry(ctx context.Context, userID int64, id string, retryCount int, nextAttemptAt time.Time, lastErr string) error

	// MoveToFailed removes the action from the pending queue (if present) and
	// stores it in the failed bucket, in one transaction.
	MoveToFailed(ctx context.Context, action models.FailedAction) error

	// LoadFailed returns the failed bucket of userID, oldest first.
	LoadFailed(ctx context.Context, userID int64) ([]models.FailedAction, error)

	// ClearFailed empties the failed bucket and returns how many actions
	// were discarded.
	ClearFailed(ctx context.Context, userID int64) (int, error)

	// RestoreFailed moves every failed action back to the tail of the
	// pending queue with a zero retry count and returns how many were
	// re-queued. A failed action whose ID is already pending is dropped
	// without being counted.
	RestoreFailed(ctx context.Context, userID int64) (int, error)

	// Counts returns the sizes of the pending queue and the failed bucket.
	Counts(ctx context.Context, userID int64) (pending int, failed int, err error)
}

// BlobRepository stores small opaque values under string keys. The engine
// keeps its per-user sync metadata here.
type BlobRepository interface {
	// SaveBlob inserts or replaces the value stored under key.
	SaveBlob(ctx context.Context, key string, value []byte) error

	// LoadBlob returns the value stored under key. found is false when the
	// key is absent, which is not an error.
	LoadBlob(ctx context.Context, key string) (value []byte, found bool, err error)
}
