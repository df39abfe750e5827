// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quiz-sync/internal/adapter"
	"github.com/MKhiriev/go-quiz-sync/internal/app"
	"github.com/MKhiriev/go-quiz-sync/internal/service"
	"github.com/MKhiriev/go-quiz-sync/internal/validators"
	"github.com/MKhiriev/go-quiz-sync/models"
)

var enqueuedAt = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func TestEnqueue(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		ack         models.EnqueueAck
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "durable",
			body:       `{"action_type":"progress_update","payload":{"course_id":"c","lesson_id":"l"}}`,
			ack:        models.EnqueueAck{ID: "a1", EnqueuedAt: enqueuedAt, Durable: true},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "memory only",
			body:       `{"action_type":"progress_update","payload":{}}`,
			ack:        models.EnqueueAck{ID: "a2", EnqueuedAt: enqueuedAt, Durable: false},
			wantStatus: http.StatusAccepted,
		},
		{
			name:        "invalid json",
			body:        `{"action_type":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "unknown type",
			body:        `{"action_type":"badge","payload":{}}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidAction, validators.ErrUnknownActionType),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgUnknownActionType,
		},
		{
			name:        "no handler for type",
			body:        `{"action_type":"progress_update","payload":{}}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidAction, service.ErrNoHandler),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgUnknownActionType,
		},
		{
			name:        "invalid payload",
			body:        `{"action_type":"quiz_attempt","payload":{}}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidAction, validators.ErrEmptyQuizID),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidPayload,
		},
		{
			name:        "unexpected",
			body:        `{"action_type":"quiz_attempt","payload":{}}`,
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{
				enqueueFn: func(_ context.Context, actionType models.ActionType, payload json.RawMessage) (models.EnqueueAck, error) {
					assert.NotEmpty(t, actionType)
					assert.NotNil(t, payload)
					return tt.ack, tt.err
				},
			}

			rr := serve(newTestRouter(engine, ""), http.MethodPost, adapter.ControlActionsPath, []byte(tt.body), nil)
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			if tt.wantMessage != "" {
				assert.Contains(t, rr.Body.String(), tt.wantMessage)
				return
			}
			ack := decodeBody[models.EnqueueAck](t, rr)
			assert.Equal(t, tt.ack.ID, ack.ID)
			assert.Equal(t, tt.ack.Durable, ack.Durable)
		})
	}
}

func TestListPending_EmptyIsArray(t *testing.T) {
	engine := &fakeEngine{
		listPendingFn: func(context.Context) ([]models.PendingAction, error) { return nil, nil },
	}

	rr := serve(newTestRouter(engine, ""), http.MethodGet, adapter.ControlActionsPath, nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListPending_Gzip(t *testing.T) {
	engine := &fakeEngine{
		listPendingFn: func(context.Context) ([]models.PendingAction, error) {
			return []models.PendingAction{{Seq: 1, ID: "a1", Type: models.ActionQuizAttempt}}, nil
		},
	}

	rr := serve(newTestRouter(engine, ""), http.MethodGet, adapter.ControlActionsPath, nil,
		map[string]string{"Accept-Encoding": "gzip"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var actions []models.PendingAction
	require.NoError(t, json.Unmarshal(raw, &actions))
	require.Len(t, actions, 1)
	assert.Equal(t, "a1", actions[0].ID)
}

func TestListPending_StoreError(t *testing.T) {
	engine := &fakeEngine{
		listPendingFn: func(context.Context) ([]models.PendingAction, error) {
			return nil, errors.New("database is locked")
		},
	}

	rr := serve(newTestRouter(engine, ""), http.MethodGet, adapter.ControlActionsPath, nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "locked")
}
