// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quiz-sync/internal/adapter"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// RegisterRemoteHandlers binds every known action type to its RemoteAPI
// call.
func RegisterRemoteHandlers(d *Dispatcher, remote adapter.RemoteAPI, policy RetryPolicy) {
	d.Register(models.ActionQuizAttempt, quizAttemptHandler{remote: remote, policy: policy})
	d.Register(models.ActionProgressUpdate, progressUpdateHandler{remote: remote, policy: policy})
	d.Register(models.ActionGamificationUpdate, gamificationUpdateHandler{remote: remote, policy: policy})
}

// quizAttemptHandler submits attempts with the action ID as idempotency key.
// A 409 means the backend already stored this attempt, which is the outcome
// a replay after a crash is expected to produce.
type quizAttemptHandler struct {
	remote adapter.RemoteAPI
	policy RetryPolicy
}

func (h quizAttemptHandler) Apply(ctx context.Context, action models.PendingAction) (models.Outcome, error) {
	var attempt models.QuizAttemptPayload
	if err := decodePayload(action, &attempt); err != nil {
		return models.OutcomePermanent, err
	}

	err := h.remote.SubmitQuizAttempt(ctx, action.ID, attempt)
	if errors.Is(err, adapter.ErrConflict) {
		return models.OutcomeSuccess, nil
	}

	return h.policy.Classify(err), err
}

type progressUpdateHandler struct {
	remote adapter.RemoteAPI
	policy RetryPolicy
}

func (h progressUpdateHandler) Apply(ctx context.Context, action models.PendingAction) (models.Outcome, error) {
	var progress models.ProgressUpdatePayload
	if err := decodePayload(action, &progress); err != nil {
		return models.OutcomePermanent, err
	}

	err := h.remote.UpsertProgress(ctx, progress)
	return h.policy.Classify(err), err
}

type gamificationUpdateHandler struct {
	remote adapter.RemoteAPI
	policy RetryPolicy
}

func (h gamificationUpdateHandler) Apply(ctx context.Context, action models.PendingAction) (models.Outcome, error) {
	var update models.GamificationUpdatePayload
	if err := decodePayload(action, &update); err != nil {
		return models.OutcomePermanent, err
	}

	err := h.remote.UpsertGamification(ctx, update)
	return h.policy.Classify(err), err
}

func decodePayload(action models.PendingAction, dst any) error {
	if err := json.Unmarshal(action.Payload, dst); err != nil {
		return fmt.Errorf("%w (id=%s, type=%s): %w", ErrDecodingPayload, action.ID, action.Type, err)
	}
	return nil
}
