// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-quiz-sync/models"
)

// volatileQueue holds the state transitions the durable store refused.
//
// pending keeps accepted actions that never reached the store, and newer
// versions of stored actions whose retry update failed. failed keeps actions
// whose move to the failed bucket failed. committed keeps IDs that were
// applied remotely but could not be removed from the store; they must never
// be dispatched again by this process.
//
// Every entry is retried against the store at the start of each pass and
// dropped once the store accepts it.
type volatileQueue struct {
	mu        sync.Mutex
	pending   []models.PendingAction
	failed    []models.FailedAction
	committed map[string]struct{}
}

func newVolatileQueue() *volatileQueue {
	return &volatileQueue{committed: make(map[string]struct{})}
}

func (v *volatileQueue) empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending) == 0 && len(v.failed) == 0 && len(v.committed) == 0
}

func (v *volatileQueue) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending) + len(v.failed) + len(v.committed)
}

// putPending inserts action or replaces the entry with the same ID.
func (v *volatileQueue) putPending(action models.PendingAction) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if i := slices.IndexFunc(v.pending, func(a models.PendingAction) bool { return a.ID == action.ID }); i >= 0 {
		v.pending[i] = action
		return
	}
	v.pending = append(v.pending, action)
}

func (v *volatileQueue) dropPending(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	before := len(v.pending)
	v.pending = slices.DeleteFunc(v.pending, func(a models.PendingAction) bool { return a.ID == id })
	return len(v.pending) != before
}

func (v *volatileQueue) putFailed(action models.FailedAction) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pending = slices.DeleteFunc(v.pending, func(a models.PendingAction) bool { return a.ID == action.ID })
	v.failed = slices.DeleteFunc(v.failed, func(a models.FailedAction) bool { return a.ID == action.ID })
	v.failed = append(v.failed, action)
}

func (v *volatileQueue) dropFailed(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failed = slices.DeleteFunc(v.failed, func(a models.FailedAction) bool { return a.ID == id })
}

func (v *volatileQueue) markCommitted(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pending = slices.DeleteFunc(v.pending, func(a models.PendingAction) bool { return a.ID == id })
	v.committed[id] = struct{}{}
}

func (v *volatileQueue) dropCommitted(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.committed, id)
}

// takeFailed removes and returns every volatile failed action.
func (v *volatileQueue) takeFailed() []models.FailedAction {
	v.mu.Lock()
	defer v.mu.Unlock()

	failed := v.failed
	v.failed = nil
	return failed
}

func (v *volatileQueue) failedCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.failed)
}

// snapshot copies the overlay for a flush.
func (v *volatileQueue) snapshot() (pending []models.PendingAction, failed []models.FailedAction, committed []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	pending = slices.Clone(v.pending)
	failed = slices.Clone(v.failed)
	for id := range v.committed {
		committed = append(committed, id)
	}
	slices.Sort(committed)
	return pending, failed, committed
}

// mergePending overlays the volatile state on the durable queue: committed
// and failed IDs disappear, newer volatile versions replace stored ones and
// memory-only actions join the tail in arrival order.
func (v *volatileQueue) mergePending(stored []models.PendingAction) []models.PendingAction {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.pending) == 0 && len(v.failed) == 0 && len(v.committed) == 0 {
		return stored
	}

	hidden := make(map[string]struct{}, len(v.failed)+len(v.committed))
	for id := range v.committed {
		hidden[id] = struct{}{}
	}
	for _, f := range v.failed {
		hidden[f.ID] = struct{}{}
	}
	overrides := make(map[string]models.PendingAction, len(v.pending))
	for _, p := range v.pending {
		overrides[p.ID] = p
	}

	merged := make([]models.PendingAction, 0, len(stored)+len(v.pending))
	seen := make(map[string]struct{}, len(stored))
	for _, a := range stored {
		seen[a.ID] = struct{}{}
		if _, ok := hidden[a.ID]; ok {
			continue
		}
		if o, ok := overrides[a.ID]; ok {
			o.Seq = a.Seq
			a = o
		}
		merged = append(merged, a)
	}
	for _, p := range v.pending {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		if _, ok := hidden[p.ID]; ok {
			continue
		}
		merged = append(merged, p)
	}

	return merged
}

// mergeFailed appends volatile failed actions to the durable bucket.
func (v *volatileQueue) mergeFailed(stored []models.FailedAction) []models.FailedAction {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.failed) == 0 {
		return stored
	}
	return append(slices.Clone(stored), v.failed...)
}
