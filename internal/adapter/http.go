// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/utils"
	"github.com/MKhiriev/go-quiz-sync/models"
)

const (
	quizAttemptsPath = "/api/v1/quiz-attempts"
	progressPath     = "/api/v1/progress/{courseID}/{lessonID}"
	gamificationPath = "/api/v1/gamification"

	headerIdempotencyKey = "Idempotency-Key"
	headerHash           = "X-Hash"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	healthPath string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the REST implementation of [RemoteAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// binds the HTTP client to it with the configured request timeout, and
// initialises the shared HMAC hasher pool used for the X-Hash header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	utils.InitHasherPool(appCfg.HashKey)

	healthPath := adapterCfg.HealthPath
	if healthPath == "" {
		healthPath = config.DefaultHealthPath
	}

	return &httpRemoteAdapter{
		client:     utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		healthPath: healthPath,
		token:      strings.TrimSpace(appCfg.Token),
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteAPI]. The token is whitespace-trimmed.
func (h *httpRemoteAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteAPI].
func (h *httpRemoteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SubmitQuizAttempt implements [RemoteAPI] as
// POST /api/v1/quiz-attempts with the Idempotency-Key header.
func (h *httpRemoteAdapter) SubmitQuizAttempt(ctx context.Context, idempotencyKey string, attempt models.QuizAttemptPayload) error {
	req, err := h.signedRequest(ctx, attempt)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader(headerIdempotencyKey, idempotencyKey).
		Post(quizAttemptsPath)
	if err != nil {
		return fmt.Errorf("%w: submit quiz attempt: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// UpsertProgress implements [RemoteAPI] as
// PUT /api/v1/progress/{courseID}/{lessonID}.
func (h *httpRemoteAdapter) UpsertProgress(ctx context.Context, progress models.ProgressUpdatePayload) error {
	req, err := h.signedRequest(ctx, progress)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{
			"courseID": progress.CourseID,
			"lessonID": progress.LessonID,
		}).
		Put(progressPath)
	if err != nil {
		return fmt.Errorf("%w: upsert progress: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// UpsertGamification implements [RemoteAPI] as PUT /api/v1/gamification.
func (h *httpRemoteAdapter) UpsertGamification(ctx context.Context, update models.GamificationUpdatePayload) error {
	req, err := h.signedRequest(ctx, update)
	if err != nil {
		return err
	}

	resp, err := req.Put(gamificationPath)
	if err != nil {
		return fmt.Errorf("%w: upsert gamification: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Ping implements [RemoteAPI] with a GET of the configured health path.
// 4xx answers still prove the backend is reachable.
func (h *httpRemoteAdapter) Ping(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get(h.healthPath)
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrTransport, err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return mapHTTPError(resp)
	}

	return nil
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest encodes body once so that the X-Hash header covers exactly
// the bytes on the wire.
func (h *httpRemoteAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingRequest, err)
	}

	return h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerHash, utils.HashHex(payload)).
		SetBody(payload), nil
}
