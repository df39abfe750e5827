// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/app"
	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/network"
	"github.com/MKhiriev/go-quiz-sync/internal/store"
	"github.com/MKhiriev/go-quiz-sync/internal/utils"
	"github.com/MKhiriev/go-quiz-sync/internal/validators"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// EngineSettings are the engine's timing and health parameters.
type EngineSettings struct {
	UserID          int64
	SyncInterval    time.Duration
	DispatchTimeout time.Duration
	MinPassSpacing  time.Duration
	Health          config.ClientHealth
}

// NewEngineSettings extracts the engine settings for userID from cfg.
func NewEngineSettings(cfg *config.ClientConfig, userID int64) EngineSettings {
	return EngineSettings{
		UserID:          userID,
		SyncInterval:    cfg.Workers.SyncInterval,
		DispatchTimeout: cfg.Workers.DispatchTimeout,
		MinPassSpacing:  cfg.Workers.MinPassSpacing,
		Health:          cfg.Health,
	}
}

type syncEngine struct {
	userID int64

	actions   store.ActionRepository
	monitor   ConnectivityMonitor
	validator validators.Validator
	ids       *utils.UUIDGenerator

	overlay   *volatileQueue
	reporter  *statusReporter
	executor  *syncExecutor
	scheduler *syncScheduler

	now    func() time.Time
	logger *logger.Logger
}

// NewSyncEngine wires the executor, scheduler and reporter around the given
// store, dispatcher and monitor. Connectivity regained and wake signals
// request a pass as soon as the engine is constructed.
func NewSyncEngine(
	actions store.ActionRepository,
	blobs store.BlobRepository,
	dispatcher *Dispatcher,
	monitor ConnectivityMonitor,
	policy RetryPolicy,
	settings EngineSettings,
	logger *logger.Logger,
) SyncEngine {
	now := func() time.Time { return time.Now().UTC() }

	overlay := newVolatileQueue()
	reporter := newStatusReporter(blobs, settings.UserID, settings.Health, settings.SyncInterval, now, logger)
	executor := &syncExecutor{
		userID:          settings.UserID,
		actions:         actions,
		dispatcher:      dispatcher,
		policy:          policy,
		online:          monitor.IsOnline,
		overlay:         overlay,
		reporter:        reporter,
		dispatchTimeout: settings.DispatchTimeout,
		now:             now,
		logger:          logger,
	}
	scheduler := newSyncScheduler(executor, monitor.IsOnline, settings.SyncInterval, settings.MinPassSpacing, now, logger)

	e := &syncEngine{
		userID:    settings.UserID,
		actions:   actions,
		monitor:   monitor,
		validator: validators.NewActionValidator(),
		ids:       utils.NewUUIDGenerator(),
		overlay:   overlay,
		reporter:  reporter,
		executor:  executor,
		scheduler: scheduler,
		now:       now,
		logger:    logger,
	}

	monitor.OnTransition(func(online bool) {
		if online {
			scheduler.RequestPass("went-online")
		}
	})
	monitor.OnWake(func() {
		scheduler.RequestPass("wake-signal")
	})

	return e
}

func (e *syncEngine) Start(ctx context.Context) error {
	if err := e.reporter.load(ctx); err != nil {
		e.logger.Err(err).Str("func", "syncEngine.Start").Msg("starting without sync metadata")
	}

	e.scheduler.Start(ctx)
	if e.monitor.IsOnline() {
		e.scheduler.RequestPass("startup")
	}

	e.logger.Info().Int64("user_id", e.userID).Msg("sync engine started")
	return nil
}

func (e *syncEngine) Stop() {
	e.scheduler.Stop()
	e.logger.Info().Int64("user_id", e.userID).Msg("sync engine stopped")
}

func (e *syncEngine) Enqueue(ctx context.Context, actionType models.ActionType, payload json.RawMessage) (models.EnqueueAck, error) {
	log := logger.FromContext(ctx)

	req := models.EnqueueRequest{Type: actionType, Payload: payload}
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.EnqueueAck{}, fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}
	// it would only ever land in the failed bucket
	if !slices.Contains(e.executor.dispatcher.Types(), actionType) {
		return models.EnqueueAck{}, fmt.Errorf("%w: %w: %q", ErrInvalidAction, ErrNoHandler, actionType)
	}

	action := models.PendingAction{
		ID:         e.ids.Generate(),
		UserID:     e.userID,
		Type:       actionType,
		Payload:    payload,
		EnqueuedAt: e.now(),
	}

	ack := models.EnqueueAck{ID: action.ID, EnqueuedAt: action.EnqueuedAt, Durable: true}

	if _, err := e.actions.Append(context.WithoutCancel(ctx), action); err != nil {
		log.Err(err).
			Str("func", "syncEngine.Enqueue").
			Int64("user_id", e.userID).
			Str("action_id", action.ID).
			Msg("store rejected action, keeping it in memory")
		e.overlay.putPending(action)
		e.reporter.flagStoreError(err)
		ack.Durable = false
	}

	if e.monitor.IsOnline() {
		e.scheduler.RequestPass("enqueue")
	}

	return ack, nil
}

func (e *syncEngine) GetStatus(ctx context.Context) models.SyncStatus {
	online := e.monitor.IsOnline()
	status := models.SyncStatus{
		IsOnline:      online,
		IsSyncing:     online && e.executor.IsSyncing(),
		VolatileCount: e.overlay.size(),
	}

	pending, failed, err := e.counts(ctx)
	if err != nil {
		e.reporter.flagStoreError(err)
	}
	status.PendingCount = pending
	status.FailedCount = failed

	in := e.reporter.snapshot(pending, failed)
	status.HealthStatus = e.reporter.classify(in)
	status.SuccessRate = in.successRate

	if !in.lastSyncTime.IsZero() {
		last := in.lastSyncTime
		status.LastSyncTime = &last
		status.LastSyncAgeSeconds = int64(in.now.Sub(last).Seconds())
	}
	if storeErr := e.reporter.storeError(); storeErr != nil {
		status.StoreError = storeErr.Error()
	}

	return status
}

// counts prefers the cheap store counters and falls back to a merged view
// while volatile state exists.
func (e *syncEngine) counts(ctx context.Context) (int, int, error) {
	if e.overlay.empty() {
		return e.actions.Counts(ctx, e.userID)
	}

	stored, err := e.actions.Load(ctx, e.userID)
	pending := len(e.overlay.mergePending(stored))

	_, failed, countErr := e.actions.Counts(ctx, e.userID)
	failed += e.overlay.failedCount()

	return pending, failed, errors.Join(err, countErr)
}

func (e *syncEngine) ManualSync(ctx context.Context) models.ManualSyncResult {
	result, err := e.executor.RunPass(ctx, "manual", true)
	if err == nil {
		e.scheduler.settleFollowUp()
	}

	switch {
	case errors.Is(err, ErrOffline):
		return models.ManualSyncResult{Message: app.MsgDeviceOffline}
	case errors.Is(err, ErrPassInProgress):
		return models.ManualSyncResult{Message: app.MsgSyncInProgress}
	case err != nil:
		return models.ManualSyncResult{Message: fmt.Sprintf("%s: %v", app.MsgSyncFailed, err)}
	}

	res := models.ManualSyncResult{
		Success:     result.Clean(),
		SyncedCount: result.Succeeded,
	}
	switch {
	case result.Aborted:
		res.Message = fmt.Sprintf("%s after %d of %d actions", app.MsgSyncInterrupted, result.Succeeded, result.Attempted)
	case result.Attempted == 0:
		res.Message = app.MsgNothingToSync
	default:
		res.Message = fmt.Sprintf("synced %d of %d actions (%d will retry, %d failed)",
			result.Succeeded, result.Attempted, result.Retried, result.Failed)
	}

	return res
}

func (e *syncEngine) ClearFailed(ctx context.Context) (int, error) {
	cleared, err := e.actions.ClearFailed(ctx, e.userID)
	if err != nil {
		e.reporter.flagStoreError(err)
		return 0, fmt.Errorf("failed to clear failed actions: %w", err)
	}

	// A volatile failed action is still a row in the durable queue.
	writeCtx := context.WithoutCancel(ctx)
	for _, f := range e.overlay.takeFailed() {
		if err = e.actions.Remove(writeCtx, e.userID, f.ID); err != nil && !errors.Is(err, store.ErrActionNotFound) {
			e.reporter.flagStoreError(err)
			e.overlay.markCommitted(f.ID)
		}
		cleared++
	}

	logger.FromContext(ctx).Info().Int64("user_id", e.userID).Int("cleared", cleared).Msg("failed actions cleared")
	return cleared, nil
}

func (e *syncEngine) RetryFailed(ctx context.Context) (int, error) {
	restored, err := e.actions.RestoreFailed(ctx, e.userID)
	if err != nil {
		e.reporter.flagStoreError(err)
		return 0, fmt.Errorf("failed to restore failed actions: %w", err)
	}

	for _, f := range e.overlay.takeFailed() {
		action := f.PendingAction
		action.RetryCount = 0
		action.NextAttemptAt = time.Time{}
		action.LastError = ""
		e.overlay.putPending(action)
		restored++
	}

	logger.FromContext(ctx).Info().Int64("user_id", e.userID).Int("restored", restored).Msg("failed actions restored")

	if restored > 0 {
		e.scheduler.Force("retry-failed")
	}
	return restored, nil
}

func (e *syncEngine) ForceSync() {
	e.scheduler.Force("force")
}

func (e *syncEngine) ListPending(ctx context.Context) ([]models.PendingAction, error) {
	stored, err := e.actions.Load(ctx, e.userID)
	if err != nil {
		e.reporter.flagStoreError(err)
		return nil, fmt.Errorf("failed to load pending actions: %w", err)
	}
	return e.overlay.mergePending(stored), nil
}

func (e *syncEngine) ListFailed(ctx context.Context) ([]models.FailedAction, error) {
	stored, err := e.actions.LoadFailed(ctx, e.userID)
	if err != nil {
		e.reporter.flagStoreError(err)
		return nil, fmt.Errorf("failed to load failed actions: %w", err)
	}
	return e.overlay.mergeFailed(stored), nil
}

func (e *syncEngine) HandleHostEvent(ctx context.Context, eventType string) error {
	kind, err := network.ParseEventKind(eventType)
	if err != nil {
		return err
	}

	if !e.monitor.Publish(network.NewEvent(kind, "control-api")) {
		return ErrEventDropped
	}

	logger.FromContext(ctx).Debug().Str("event", string(kind)).Msg("host event accepted")
	return nil
}
