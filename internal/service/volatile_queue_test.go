// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quiz-sync/models"
)

func pendingIDs(actions []models.PendingAction) []string {
	ids := make([]string, 0, len(actions))
	for _, a := range actions {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestVolatileQueue_EmptyPassThrough(t *testing.T) {
	v := newVolatileQueue()
	stored := []models.PendingAction{{ID: "a"}, {ID: "b"}}

	assert.True(t, v.empty())
	assert.Equal(t, stored, v.mergePending(stored))
}

func TestVolatileQueue_MergePending(t *testing.T) {
	v := newVolatileQueue()
	stored := []models.PendingAction{
		{Seq: 1, ID: "a"},
		{Seq: 2, ID: "b", RetryCount: 1},
		{Seq: 3, ID: "c"},
		{Seq: 4, ID: "d"},
	}

	v.putPending(models.PendingAction{ID: "b", RetryCount: 2})
	v.putPending(models.PendingAction{ID: "mem-1"})
	v.putFailed(models.FailedAction{PendingAction: models.PendingAction{ID: "c"}})
	v.markCommitted("d")
	v.putPending(models.PendingAction{ID: "mem-2"})

	merged := v.mergePending(stored)
	assert.Equal(t, []string{"a", "b", "mem-1", "mem-2"}, pendingIDs(merged))
	assert.Equal(t, 2, merged[1].RetryCount, "volatile version wins")
	assert.Equal(t, int64(2), merged[1].Seq, "stored position is kept")
	assert.Equal(t, 5, v.size(), "pending, failed and committed entries all count")
}

func TestVolatileQueue_PutPendingReplaces(t *testing.T) {
	v := newVolatileQueue()
	v.putPending(models.PendingAction{ID: "a", RetryCount: 1})
	v.putPending(models.PendingAction{ID: "a", RetryCount: 2})

	pending, _, _ := v.snapshot()
	assert.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].RetryCount)
}

func TestVolatileQueue_PutFailedRemovesPending(t *testing.T) {
	v := newVolatileQueue()
	v.putPending(models.PendingAction{ID: "a"})
	v.putFailed(models.FailedAction{PendingAction: models.PendingAction{ID: "a"}})

	pending, failed, _ := v.snapshot()
	assert.Empty(t, pending)
	assert.Len(t, failed, 1)
	assert.Equal(t, 1, v.failedCount())
}

func TestVolatileQueue_DropAndTake(t *testing.T) {
	v := newVolatileQueue()
	v.putPending(models.PendingAction{ID: "a"})
	v.putFailed(models.FailedAction{PendingAction: models.PendingAction{ID: "f1"}})
	v.putFailed(models.FailedAction{PendingAction: models.PendingAction{ID: "f2"}})
	v.markCommitted("c")

	assert.True(t, v.dropPending("a"))
	assert.False(t, v.dropPending("a"))

	v.dropFailed("f1")
	taken := v.takeFailed()
	assert.Len(t, taken, 1)
	assert.Equal(t, "f2", taken[0].ID)
	assert.Zero(t, v.failedCount())

	_, _, committed := v.snapshot()
	assert.Equal(t, []string{"c"}, committed)
	v.dropCommitted("c")
	assert.True(t, v.empty())
}

func TestVolatileQueue_MergeFailed(t *testing.T) {
	v := newVolatileQueue()
	stored := []models.FailedAction{{PendingAction: models.PendingAction{ID: "s"}}}
	assert.Equal(t, stored, v.mergeFailed(stored))

	v.putFailed(models.FailedAction{PendingAction: models.PendingAction{ID: "v"}})
	merged := v.mergeFailed(stored)
	assert.Len(t, merged, 2)
	assert.Equal(t, "v", merged[1].ID)
	assert.Len(t, stored, 1, "input must not be modified")
}
