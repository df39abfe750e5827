// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-quiz-sync/internal/utils"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// Control API routes served by the sync client.
const (
	ControlActionsPath     = "/api/actions"
	ControlStatusPath      = "/api/sync/status"
	ControlManualSyncPath  = "/api/sync/manual"
	ControlForceSyncPath   = "/api/sync/force"
	ControlFailedPath      = "/api/sync/failed"
	ControlRetryFailedPath = "/api/sync/failed/retry"
	ControlHostEventsPath  = "/api/host/events"
)

type httpControlClient struct {
	client  *utils.HTTPClient
	hashKey string
}

// NewHTTPControlClient returns a [ControlAPI] talking to the control API at
// address (host:port or URL). A non-empty hashKey signs request bodies with
// the X-Hash header the control API verifies.
func NewHTTPControlClient(address string, timeout time.Duration, hashKey string) (ControlAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid control address: %w", err)
	}

	return &httpControlClient{client: utils.NewHTTPClient(baseURL, timeout), hashKey: hashKey}, nil
}

func (c *httpControlClient) Status(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus
	err := c.do(ctx, resty.MethodGet, ControlStatusPath, nil, &status)
	return status, err
}

func (c *httpControlClient) ManualSync(ctx context.Context) (models.ManualSyncResult, error) {
	var result models.ManualSyncResult
	err := c.do(ctx, resty.MethodPost, ControlManualSyncPath, nil, &result)
	return result, err
}

func (c *httpControlClient) ForceSync(ctx context.Context) error {
	return c.do(ctx, resty.MethodPost, ControlForceSyncPath, nil, nil)
}

func (c *httpControlClient) ListPending(ctx context.Context) ([]models.PendingAction, error) {
	var actions []models.PendingAction
	err := c.do(ctx, resty.MethodGet, ControlActionsPath, nil, &actions)
	return actions, err
}

func (c *httpControlClient) ListFailed(ctx context.Context) ([]models.FailedAction, error) {
	var actions []models.FailedAction
	err := c.do(ctx, resty.MethodGet, ControlFailedPath, nil, &actions)
	return actions, err
}

func (c *httpControlClient) RetryFailed(ctx context.Context) (int, error) {
	var resp models.CountResponse
	err := c.do(ctx, resty.MethodPost, ControlRetryFailedPath, nil, &resp)
	return resp.Count, err
}

func (c *httpControlClient) ClearFailed(ctx context.Context) (int, error) {
	var resp models.CountResponse
	err := c.do(ctx, resty.MethodDelete, ControlFailedPath, nil, &resp)
	return resp.Count, err
}

func (c *httpControlClient) Enqueue(ctx context.Context, req models.EnqueueRequest) (models.EnqueueAck, error) {
	var ack models.EnqueueAck
	err := c.do(ctx, resty.MethodPost, ControlActionsPath, req, &ack)
	return ack, err
}

func (c *httpControlClient) SendEvent(ctx context.Context, eventType string) error {
	return c.do(ctx, resty.MethodPost, ControlHostEventsPath, models.HostEventRequest{Type: eventType}, nil)
}

func (c *httpControlClient) do(ctx context.Context, method, path string, body, result any) error {
	req := c.client.R().SetContext(ctx)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingRequest, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(raw)
		if c.hashKey != "" {
			req.SetHeader(headerHash, utils.HashString(string(raw), c.hashKey))
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return nil
}
