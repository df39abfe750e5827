// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer clients of go-quiz-sync.
//
// [RemoteAPI] is the engine's only way to apply an action to the learning
// backend. The shipped implementation speaks REST through resty
// ([NewHTTPRemoteAdapter]). [ControlAPI] is the client side of the local
// control API and is used by the syncctl CLI.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] without parsing status codes
// (e.g. [ErrConflict] for 409, [ErrTooManyRequests] for 429). Network-level
// failures wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quiz-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_api_mock.go -package=mock

// RemoteAPI defines the remote operations a queued action can be applied
// through. Every call is a single request; retries belong to the caller.
type RemoteAPI interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SubmitQuizAttempt records a finished quiz attempt. idempotencyKey is
	// sent as the Idempotency-Key header so the backend can reject a replay
	// of an attempt it already stored with 409 Conflict.
	SubmitQuizAttempt(ctx context.Context, idempotencyKey string, attempt models.QuizAttemptPayload) error

	// UpsertProgress writes the learner's progress in one lesson. The call is
	// an idempotent PUT.
	UpsertProgress(ctx context.Context, progress models.ProgressUpdatePayload) error

	// UpsertGamification writes absolute XP, level, streak and badge values.
	// The call is an idempotent PUT.
	UpsertGamification(ctx context.Context, update models.GamificationUpdatePayload) error

	// Ping checks that the backend is reachable. Any HTTP response other than
	// a transport error or 5xx counts as reachable.
	Ping(ctx context.Context) error
}

// ControlAPI is a client for the local control API served by the sync
// client process.
type ControlAPI interface {
	Status(ctx context.Context) (models.SyncStatus, error)
	ManualSync(ctx context.Context) (models.ManualSyncResult, error)
	ForceSync(ctx context.Context) error
	ListPending(ctx context.Context) ([]models.PendingAction, error)
	ListFailed(ctx context.Context) ([]models.FailedAction, error)
	RetryFailed(ctx context.Context) (int, error)
	ClearFailed(ctx context.Context) (int, error)
	Enqueue(ctx context.Context, req models.EnqueueRequest) (models.EnqueueAck, error)
	SendEvent(ctx context.Context, eventType string) error
}
