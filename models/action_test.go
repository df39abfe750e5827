// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionType_Valid(t *testing.T) {
	for _, known := range KnownActionTypes {
		assert.True(t, known.Valid(), known)
	}
	assert.False(t, ActionType("").Valid())
	assert.False(t, ActionType("delete_account").Valid())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "transient", OutcomeTransient.String())
	assert.Equal(t, "permanent", OutcomePermanent.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestPassResult_Clean(t *testing.T) {
	assert.True(t, PassResult{Attempted: 3, Succeeded: 3}.Clean())
	assert.False(t, PassResult{Attempted: 3, Succeeded: 2, Retried: 1}.Clean())
	assert.False(t, PassResult{Attempted: 1, Failed: 1}.Clean())
	assert.False(t, PassResult{Aborted: true}.Clean())
}

func TestFailedAction_JSONFlattensPendingFields(t *testing.T) {
	failed := FailedAction{
		PendingAction: PendingAction{
			ID:         "a-1",
			UserID:     7,
			Type:       ActionProgressUpdate,
			Payload:    json.RawMessage(`{"course_id":"c"}`),
			RetryCount: 4,
		},
		FailedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Reason:   FailReasonRetriesExhausted,
	}

	raw, err := json.Marshal(failed)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "a-1", fields["id"])
	assert.Equal(t, "progress_update", fields["action_type"])
	assert.Equal(t, float64(4), fields["retry_count"])
	assert.Equal(t, "retries_exhausted", fields["reason"])
	_, hasNext := fields["next_attempt_at"]
	assert.False(t, hasNext, "zero next_attempt_at should be omitted")
}
