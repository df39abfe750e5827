// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/store"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// minRateSamples is how many outcomes the window needs before a low success
// rate can raise a warning.
const minRateSamples = 10

// syncMeta is persisted as a per-user blob so the age of the last pass
// survives restarts.
type syncMeta struct {
	LastSyncTime    time.Time `json:"last_sync_time,omitzero"`
	LastSuccessTime time.Time `json:"last_success_time,omitzero"`
}

func syncMetaKey(userID int64) string {
	return fmt.Sprintf("sync_meta:%d", userID)
}

// healthInputs is everything classify needs.
type healthInputs struct {
	pending         int
	failed          int
	storeError      bool
	successRate     float64
	samples         int
	lastSyncTime    time.Time
	lastSuccessTime time.Time
	now             time.Time
}

// statusReporter tracks pass outcomes and grades sync health.
type statusReporter struct {
	blobs  store.BlobRepository
	userID int64

	health       config.ClientHealth
	syncInterval time.Duration
	startedAt    time.Time

	mu              sync.Mutex
	window          []bool
	next            int
	filled          int
	lastSyncTime    time.Time
	lastSuccessTime time.Time
	storeErr        error

	now    func() time.Time
	logger *logger.Logger
}

func newStatusReporter(blobs store.BlobRepository, userID int64, health config.ClientHealth, syncInterval time.Duration, now func() time.Time, logger *logger.Logger) *statusReporter {
	size := health.Window
	if size <= 0 {
		size = config.DefaultHealthWindow
	}

	return &statusReporter{
		blobs:        blobs,
		userID:       userID,
		health:       health,
		syncInterval: syncInterval,
		startedAt:    now(),
		window:       make([]bool, size),
		now:          now,
		logger:       logger,
	}
}

// load restores the persisted pass timestamps.
func (r *statusReporter) load(ctx context.Context) error {
	raw, found, err := r.blobs.LoadBlob(ctx, syncMetaKey(r.userID))
	if err != nil {
		r.flagStoreError(err)
		return fmt.Errorf("failed to load sync metadata: %w", err)
	}
	if !found {
		return nil
	}

	var meta syncMeta
	if err = json.Unmarshal(raw, &meta); err != nil {
		r.logger.Warn().Err(err).Str("func", "statusReporter.load").Msg("ignoring unreadable sync metadata")
		return nil
	}

	r.mu.Lock()
	r.lastSyncTime = meta.LastSyncTime
	r.lastSuccessTime = meta.LastSuccessTime
	r.mu.Unlock()

	return nil
}

// recordOutcome pushes one dispatch outcome into the rolling window.
func (r *statusReporter) recordOutcome(outcome models.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.window[r.next] = outcome == models.OutcomeSuccess
	r.next = (r.next + 1) % len(r.window)
	if r.filled < len(r.window) {
		r.filled++
	}
}

// flagStoreError marks the store as failing until a clean pass proves
// otherwise.
func (r *statusReporter) flagStoreError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storeErr = err
}

func (r *statusReporter) storeError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storeErr
}

// passCompleted records the end of a pass that was not aborted. The store
// error flag is cleared only when the pass hit no store errors and nothing
// is left in memory.
func (r *statusReporter) passCompleted(ctx context.Context, result models.PassResult, storeHealthy bool) {
	r.mu.Lock()
	r.lastSyncTime = result.FinishedAt
	if result.Succeeded > 0 || (result.Attempted == 0 && result.Skipped == 0) {
		r.lastSuccessTime = result.FinishedAt
	}
	if storeHealthy {
		r.storeErr = nil
	}
	meta := syncMeta{LastSyncTime: r.lastSyncTime, LastSuccessTime: r.lastSuccessTime}
	r.mu.Unlock()

	raw, err := json.Marshal(meta)
	if err != nil {
		return
	}
	if err = r.blobs.SaveBlob(ctx, syncMetaKey(r.userID), raw); err != nil {
		r.logger.Err(err).Str("func", "statusReporter.passCompleted").Msg("failed to persist sync metadata")
		r.flagStoreError(err)
	}
}

// successRate is the share of successes in the window, 1 when it is empty.
func (r *statusReporter) successRate() (rate float64, samples int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.filled == 0 {
		return 1, 0
	}

	successes := 0
	for i := 0; i < r.filled; i++ {
		if r.window[i] {
			successes++
		}
	}
	return float64(successes) / float64(r.filled), r.filled
}

// snapshot gathers the reporter's own inputs; counts come from the caller.
func (r *statusReporter) snapshot(pending, failed int) healthInputs {
	rate, samples := r.successRate()

	r.mu.Lock()
	defer r.mu.Unlock()

	return healthInputs{
		pending:         pending,
		failed:          failed,
		storeError:      r.storeErr != nil,
		successRate:     rate,
		samples:         samples,
		lastSyncTime:    r.lastSyncTime,
		lastSuccessTime: r.lastSuccessTime,
		now:             r.now(),
	}
}

// classify grades health from a snapshot. Staleness only counts while work
// is pending; a process that never completed a pass measures age from its
// own start.
func (r *statusReporter) classify(in healthInputs) models.HealthStatus {
	h := r.health

	lastSuccess := in.lastSuccessTime
	if lastSuccess.IsZero() {
		lastSuccess = r.startedAt
	}
	lastSync := in.lastSyncTime
	if lastSync.IsZero() {
		lastSync = r.startedAt
	}

	switch {
	case in.storeError,
		h.CriticalPending > 0 && in.pending >= h.CriticalPending,
		h.CriticalFailed > 0 && in.failed >= h.CriticalFailed,
		in.pending > 0 && r.staleBeyond(in.now.Sub(lastSuccess), h.CriticalStaleFactor):
		return models.HealthCritical

	case h.WarnFailed > 0 && in.failed >= h.WarnFailed,
		h.WarnPending > 0 && in.pending >= h.WarnPending,
		in.samples >= min(minRateSamples, len(r.window)) && in.successRate < h.WarnSuccessRate,
		in.pending > 0 && r.staleBeyond(in.now.Sub(lastSync), h.WarnStaleFactor):
		return models.HealthWarning
	}

	return models.HealthHealthy
}

func (r *statusReporter) staleBeyond(age time.Duration, factor float64) bool {
	if factor <= 0 || r.syncInterval <= 0 {
		return false
	}
	return age > time.Duration(factor*float64(r.syncInterval))
}
