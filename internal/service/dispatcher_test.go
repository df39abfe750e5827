// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/models"
)

func TestDispatcher_RoutesByType(t *testing.T) {
	d := NewDispatcher(logger.Nop())

	var got []models.ActionType
	record := func(outcome models.Outcome, err error) ActionHandlerFunc {
		return func(_ context.Context, action models.PendingAction) (models.Outcome, error) {
			got = append(got, action.Type)
			return outcome, err
		}
	}
	boom := errors.New("boom")
	d.Register(models.ActionQuizAttempt, record(models.OutcomeSuccess, nil))
	d.Register(models.ActionProgressUpdate, record(models.OutcomeTransient, boom))

	outcome, err := d.Dispatch(context.Background(), models.PendingAction{ID: "a", Type: models.ActionProgressUpdate})
	assert.Equal(t, models.OutcomeTransient, outcome)
	assert.ErrorIs(t, err, boom)

	outcome, err = d.Dispatch(context.Background(), models.PendingAction{ID: "b", Type: models.ActionQuizAttempt})
	assert.Equal(t, models.OutcomeSuccess, outcome)
	assert.NoError(t, err)

	assert.Equal(t, []models.ActionType{models.ActionProgressUpdate, models.ActionQuizAttempt}, got)
}

func TestDispatcher_UnknownTypeIsPermanent(t *testing.T) {
	d := NewDispatcher(logger.Nop())

	outcome, err := d.Dispatch(context.Background(), models.PendingAction{ID: "a", Type: "badge_unlock"})
	assert.Equal(t, models.OutcomePermanent, outcome)
	require.ErrorIs(t, err, ErrNoHandler)
	assert.Contains(t, err.Error(), "badge_unlock")
}

func TestDispatcher_RecoversHandlerPanic(t *testing.T) {
	d := NewDispatcher(logger.Nop())
	d.Register(models.ActionGamificationUpdate, ActionHandlerFunc(func(context.Context, models.PendingAction) (models.Outcome, error) {
		panic("nil map")
	}))

	outcome, err := d.Dispatch(context.Background(), models.PendingAction{ID: "a", Type: models.ActionGamificationUpdate})
	assert.Equal(t, models.OutcomeTransient, outcome)
	require.ErrorIs(t, err, ErrHandlerPanic)
	assert.Contains(t, err.Error(), "nil map")
}

func TestDispatcher_RegisterReplaces(t *testing.T) {
	d := NewDispatcher(logger.Nop())
	d.Register(models.ActionQuizAttempt, ActionHandlerFunc(func(context.Context, models.PendingAction) (models.Outcome, error) {
		return models.OutcomePermanent, nil
	}))
	d.Register(models.ActionQuizAttempt, ActionHandlerFunc(func(context.Context, models.PendingAction) (models.Outcome, error) {
		return models.OutcomeSuccess, nil
	}))

	outcome, _ := d.Dispatch(context.Background(), models.PendingAction{Type: models.ActionQuizAttempt})
	assert.Equal(t, models.OutcomeSuccess, outcome)
}

func TestDispatcher_Types(t *testing.T) {
	d := NewDispatcher(logger.Nop())
	noop := ActionHandlerFunc(func(context.Context, models.PendingAction) (models.Outcome, error) {
		return models.OutcomeSuccess, nil
	})
	d.Register(models.ActionQuizAttempt, noop)
	d.Register(models.ActionGamificationUpdate, noop)
	d.Register(models.ActionProgressUpdate, noop)

	assert.Equal(t, []models.ActionType{
		models.ActionGamificationUpdate,
		models.ActionProgressUpdate,
		models.ActionQuizAttempt,
	}, d.Types())
}
