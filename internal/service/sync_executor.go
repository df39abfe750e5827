// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/store"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// syncExecutor drains the pending queue of one user. At most one pass runs
// at a time.
type syncExecutor struct {
	userID     int64
	actions    store.ActionRepository
	dispatcher *Dispatcher
	policy     RetryPolicy
	online     func() bool
	overlay    *volatileQueue
	reporter   *statusReporter

	dispatchTimeout time.Duration

	syncing atomic.Bool
	now     func() time.Time
	logger  *logger.Logger
}

// passState is the per-pass bookkeeping.
type passState struct {
	result    models.PassResult
	force     bool
	attempted map[string]struct{}
	storeErr  bool
}

// IsSyncing reports whether a pass is running.
func (e *syncExecutor) IsSyncing() bool {
	return e.syncing.Load()
}

// RunPass drains the queue oldest first. Each action is attempted at most
// once per pass, including actions enqueued while the pass runs. Unless
// force is set, actions still inside their backoff window are skipped.
//
// The pass stops early, leaving the remaining actions untouched, when the
// device goes offline or ctx is cancelled. It returns ErrOffline or
// ErrPassInProgress without doing anything when it cannot start.
func (e *syncExecutor) RunPass(ctx context.Context, reason string, force bool) (models.PassResult, error) {
	if !e.online() {
		return models.PassResult{}, ErrOffline
	}
	if !e.syncing.CompareAndSwap(false, true) {
		return models.PassResult{}, ErrPassInProgress
	}
	defer e.syncing.Store(false)

	log := logger.FromContext(ctx)

	pass := &passState{
		result:    models.PassResult{Reason: reason, StartedAt: e.now()},
		force:     force,
		attempted: make(map[string]struct{}),
	}

	e.flushOverlay(ctx, pass)

	for !pass.result.Aborted {
		batch, skipped, err := e.eligible(ctx, pass)
		if err != nil {
			pass.storeErr = true
			pass.result.Aborted = true
			break
		}
		if len(batch) == 0 {
			pass.result.Skipped = skipped
			break
		}

		for _, action := range batch {
			if ctx.Err() != nil || !e.online() {
				pass.result.Aborted = true
				break
			}
			e.attempt(ctx, pass, action)
		}
	}

	pass.result.FinishedAt = e.now()

	log.Info().
		Str("func", "syncExecutor.RunPass").
		Str("reason", reason).
		Bool("force", force).
		Int("attempted", pass.result.Attempted).
		Int("succeeded", pass.result.Succeeded).
		Int("retried", pass.result.Retried).
		Int("failed", pass.result.Failed).
		Int("skipped", pass.result.Skipped).
		Bool("aborted", pass.result.Aborted).
		Msg("sync pass finished")

	if !pass.result.Aborted {
		e.reporter.passCompleted(context.WithoutCancel(ctx), pass.result, !pass.storeErr && e.overlay.empty())
	}

	return pass.result, nil
}

// eligible loads the queue and returns the actions this pass has not tried
// yet, plus how many were held back by their backoff window.
func (e *syncExecutor) eligible(ctx context.Context, pass *passState) ([]models.PendingAction, int, error) {
	stored, err := e.actions.Load(ctx, e.userID)
	if err != nil {
		if ctx.Err() == nil {
			e.reporter.flagStoreError(err)
		}
		return nil, 0, err
	}

	now := e.now()
	var (
		batch   []models.PendingAction
		skipped int
	)
	for _, action := range e.overlay.mergePending(stored) {
		if _, done := pass.attempted[action.ID]; done {
			continue
		}
		if !pass.force && action.NextAttemptAt.After(now) {
			skipped++
			continue
		}
		batch = append(batch, action)
	}

	return batch, skipped, nil
}

// attempt dispatches one action and records the resulting transition.
func (e *syncExecutor) attempt(ctx context.Context, pass *passState, action models.PendingAction) {
	pass.attempted[action.ID] = struct{}{}

	outcome, err := e.dispatch(ctx, action)

	// A dispatch cut short by shutdown says nothing about the action.
	if outcome != models.OutcomeSuccess && ctx.Err() != nil {
		pass.result.Aborted = true
		return
	}

	pass.result.Attempted++
	e.reporter.recordOutcome(outcome)

	// Store writes must not be interrupted by a stop.
	writeCtx := context.WithoutCancel(ctx)

	switch outcome {
	case models.OutcomeSuccess:
		pass.result.Succeeded++
		e.commit(writeCtx, pass, action)

	case models.OutcomePermanent:
		pass.result.Failed++
		e.fail(writeCtx, pass, action, models.FailReasonPermanent, err)

	default:
		action.RetryCount++
		action.LastError = errorText(err)
		if e.policy.Exhausted(action.RetryCount) {
			pass.result.Failed++
			e.fail(writeCtx, pass, action, models.FailReasonRetriesExhausted, err)
			return
		}
		pass.result.Retried++
		action.NextAttemptAt = e.now().Add(e.policy.Backoff(action.RetryCount))
		e.retry(writeCtx, pass, action)
	}
}

// dispatch bounds a single apply by the dispatch timeout. A handler that
// ignores its context is abandoned once the timeout expires.
func (e *syncExecutor) dispatch(ctx context.Context, action models.PendingAction) (models.Outcome, error) {
	dctx := ctx
	if e.dispatchTimeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, e.dispatchTimeout)
		defer cancel()
	}

	type dispatchResult struct {
		outcome models.Outcome
		err     error
	}
	done := make(chan dispatchResult, 1)

	go func() {
		outcome, err := e.dispatcher.Dispatch(dctx, action)
		done <- dispatchResult{outcome: outcome, err: err}
	}()

	select {
	case r := <-done:
		return r.outcome, r.err
	case <-dctx.Done():
		return models.OutcomeTransient, fmt.Errorf("%w: %w", ErrDispatchTimeout, dctx.Err())
	}
}

// commit removes an applied action. This write is the commit point of the
// success; until it lands the action stays hidden in memory.
func (e *syncExecutor) commit(ctx context.Context, pass *passState, action models.PendingAction) {
	volatileOnly := e.overlay.dropPending(action.ID)

	err := e.actions.Remove(ctx, e.userID, action.ID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrActionNotFound) && volatileOnly:
	case errors.Is(err, store.ErrActionNotFound):
		logger.FromContext(ctx).Warn().
			Str("func", "syncExecutor.commit").
			Str("action_id", action.ID).
			Msg("applied action was no longer pending")
	default:
		e.storeFailure(ctx, pass, "commit", action.ID, err)
		e.overlay.markCommitted(action.ID)
	}
}

func (e *syncExecutor) retry(ctx context.Context, pass *passState, action models.PendingAction) {
	err := e.actions.MarkRetry(ctx, e.userID, action.ID, action.RetryCount, action.NextAttemptAt, action.LastError)
	if err == nil {
		e.overlay.dropPending(action.ID)
		return
	}

	if !errors.Is(err, store.ErrActionNotFound) {
		e.storeFailure(ctx, pass, "retry", action.ID, err)
	}
	e.overlay.putPending(action)
}

func (e *syncExecutor) fail(ctx context.Context, pass *passState, action models.PendingAction, reason models.FailReason, cause error) {
	action.LastError = errorText(cause)
	failed := models.FailedAction{
		PendingAction: action,
		FailedAt:      e.now(),
		Reason:        reason,
	}

	logger.FromContext(ctx).Warn().
		Str("func", "syncExecutor.fail").
		Str("action_id", action.ID).
		Str("action_type", action.Type.String()).
		Int("retry_count", action.RetryCount).
		Str("reason", string(reason)).
		Str("last_error", action.LastError).
		Msg("action moved to failed bucket")

	if err := e.actions.MoveToFailed(ctx, failed); err != nil {
		e.storeFailure(ctx, pass, "move to failed", action.ID, err)
		e.overlay.putFailed(failed)
		return
	}
	e.overlay.dropPending(action.ID)
}

// flushOverlay replays volatile transitions against the store.
func (e *syncExecutor) flushOverlay(ctx context.Context, pass *passState) {
	if e.overlay.empty() {
		return
	}
	ctx = context.WithoutCancel(ctx)

	pending, failed, committed := e.overlay.snapshot()

	for _, id := range committed {
		err := e.actions.Remove(ctx, e.userID, id)
		if err != nil && !errors.Is(err, store.ErrActionNotFound) {
			e.storeFailure(ctx, pass, "flush commit", id, err)
			continue
		}
		e.overlay.dropCommitted(id)
	}

	for _, f := range failed {
		if err := e.actions.MoveToFailed(ctx, f); err != nil {
			e.storeFailure(ctx, pass, "flush failed", f.ID, err)
			continue
		}
		e.overlay.dropFailed(f.ID)
	}

	for _, p := range pending {
		err := e.actions.MarkRetry(ctx, e.userID, p.ID, p.RetryCount, p.NextAttemptAt, p.LastError)
		if errors.Is(err, store.ErrActionNotFound) {
			_, err = e.actions.Append(ctx, p)
		}
		if err != nil {
			e.storeFailure(ctx, pass, "flush pending", p.ID, err)
			continue
		}
		e.overlay.dropPending(p.ID)
	}
}

func (e *syncExecutor) storeFailure(ctx context.Context, pass *passState, op, actionID string, err error) {
	pass.storeErr = true
	e.reporter.flagStoreError(err)
	logger.FromContext(ctx).Err(err).
		Str("func", "syncExecutor.storeFailure").
		Str("op", op).
		Str("action_id", actionID).
		Msg("store rejected state transition, keeping it in memory")
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
