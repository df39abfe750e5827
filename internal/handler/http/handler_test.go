// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/utils"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// fakeEngine implements service.SyncEngine; unset funcs panic so a test
// notices an unexpected call.
type fakeEngine struct {
	enqueueFn     func(ctx context.Context, actionType models.ActionType, payload json.RawMessage) (models.EnqueueAck, error)
	statusFn      func(ctx context.Context) models.SyncStatus
	manualSyncFn  func(ctx context.Context) models.ManualSyncResult
	clearFailedFn func(ctx context.Context) (int, error)
	retryFailedFn func(ctx context.Context) (int, error)
	listPendingFn func(ctx context.Context) ([]models.PendingAction, error)
	listFailedFn  func(ctx context.Context) ([]models.FailedAction, error)
	hostEventFn   func(ctx context.Context, eventType string) error

	forced int
}

func (f *fakeEngine) Start(context.Context) error { return nil }
func (f *fakeEngine) Stop()                       {}
func (f *fakeEngine) ForceSync()                  { f.forced++ }

func (f *fakeEngine) Enqueue(ctx context.Context, actionType models.ActionType, payload json.RawMessage) (models.EnqueueAck, error) {
	return f.enqueueFn(ctx, actionType, payload)
}
func (f *fakeEngine) GetStatus(ctx context.Context) models.SyncStatus { return f.statusFn(ctx) }
func (f *fakeEngine) ManualSync(ctx context.Context) models.ManualSyncResult {
	return f.manualSyncFn(ctx)
}
func (f *fakeEngine) ClearFailed(ctx context.Context) (int, error) { return f.clearFailedFn(ctx) }
func (f *fakeEngine) RetryFailed(ctx context.Context) (int, error) { return f.retryFailedFn(ctx) }
func (f *fakeEngine) ListPending(ctx context.Context) ([]models.PendingAction, error) {
	return f.listPendingFn(ctx)
}
func (f *fakeEngine) ListFailed(ctx context.Context) ([]models.FailedAction, error) {
	return f.listFailedFn(ctx)
}
func (f *fakeEngine) HandleHostEvent(ctx context.Context, eventType string) error {
	return f.hostEventFn(ctx, eventType)
}

func newTestRouter(engine *fakeEngine, hashKey string) http.Handler {
	h := NewHandler(engine, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), hashKey, logger.Nop())
	return h.Init()
}

func serve(router http.Handler, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func signed(body []byte, key string) map[string]string {
	return map[string]string{hashHeader: utils.HashString(string(body), key)}
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
