// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ActionType names the kind of remote mutation a queued action performs.
// The dispatcher routes every action to the handler registered for its type.
type ActionType string

const (
	// ActionQuizAttempt submits a finished quiz attempt. Attempts are
	// append-only on the remote side and deduplicated by action ID.
	ActionQuizAttempt ActionType = "quiz_attempt"

	// ActionProgressUpdate upserts the learner's progress in a lesson.
	ActionProgressUpdate ActionType = "progress_update"

	// ActionGamificationUpdate upserts absolute XP, level, streak and badge values.
	ActionGamificationUpdate ActionType = "gamification_update"
)

// KnownActionTypes lists every action type the engine can dispatch.
var KnownActionTypes = []ActionType{
	ActionQuizAttempt,
	ActionProgressUpdate,
	ActionGamificationUpdate,
}

// Valid reports whether t is one of KnownActionTypes.
func (t ActionType) Valid() bool {
	for _, known := range KnownActionTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t ActionType) String() string {
	return string(t)
}

// PendingAction is a user mutation that has been accepted locally but not
// yet confirmed by the remote backend.
//
// Seq is assigned by the durable store and defines FIFO order. ID is a
// time-ordered UUID generated at enqueue time and doubles as the idempotency
// key sent to the remote API, so a re-dispatch after a crash is deduplicated.
type PendingAction struct {
	Seq    int64      `json:"seq"`
	ID     string     `json:"id"`
	UserID int64      `json:"user_id"`
	Type   ActionType `json:"action_type"`

	// Payload is the opaque, type-specific body. It is decoded only by the
	// validator at enqueue time and by the handler at dispatch time.
	Payload json.RawMessage `json:"payload"`

	EnqueuedAt time.Time `json:"enqueued_at"`

	// RetryCount is the number of transient failures observed so far.
	RetryCount int `json:"retry_count"`

	// NextAttemptAt is the earliest time a scheduled pass may dispatch the
	// action again. The zero value means "immediately".
	NextAttemptAt time.Time `json:"next_attempt_at,omitzero"`

	LastError string `json:"last_error,omitempty"`
}

// FailReason records why an action left the pending queue for the failed bucket.
type FailReason string

const (
	// FailReasonPermanent means the handler reported a failure retrying can't fix.
	FailReasonPermanent FailReason = "permanent"

	// FailReasonRetriesExhausted means transient failures exceeded the retry limit.
	FailReasonRetriesExhausted FailReason = "retries_exhausted"
)

// FailedAction is an action parked in the failed bucket. It keeps the full
// pending record so it can be restored by a retry request.
type FailedAction struct {
	PendingAction

	FailedAt time.Time  `json:"failed_at"`
	Reason   FailReason `json:"reason"`
}
