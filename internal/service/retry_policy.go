// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/adapter"
	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/validators"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// permanentErrors can never succeed on replay: the remote rejected the
// content of the action itself.
var permanentErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrForbidden,
	adapter.ErrPayloadTooLarge,
	adapter.ErrUnprocessable,
	adapter.ErrEncodingRequest,
	ErrDecodingPayload,
	ErrNoHandler,
	validators.ErrMalformedPayload,
}

// ClassifyError maps a dispatch error to an outcome. nil is a success;
// rejected content is permanent; everything else, including timeouts,
// network errors, 401, 408, 429, 5xx and unknown errors, is transient.
func ClassifyError(err error) models.Outcome {
	if err == nil {
		return models.OutcomeSuccess
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return models.OutcomeTransient
	}

	for _, target := range permanentErrors {
		if errors.Is(err, target) {
			return models.OutcomePermanent
		}
	}

	return models.OutcomeTransient
}

// ExponentialRetryPolicy waits Base*2^(n-1) after the n-th failure, capped
// at Max, and gives up once the failure count exceeds MaxRetries.
type ExponentialRetryPolicy struct {
	MaxRetries int
	Base       time.Duration
	Max        time.Duration
}

// NewRetryPolicy builds the policy from worker settings. A non-positive
// MaxRetries falls back to the default of 3.
func NewRetryPolicy(cfg config.ClientWorkers) ExponentialRetryPolicy {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = config.DefaultMaxRetries
	}

	return ExponentialRetryPolicy{
		MaxRetries: maxRetries,
		Base:       cfg.BackoffBase,
		Max:        cfg.MaxBackoff,
	}
}

func (p ExponentialRetryPolicy) Classify(err error) models.Outcome {
	return ClassifyError(err)
}

func (p ExponentialRetryPolicy) Backoff(retryCount int) time.Duration {
	if retryCount <= 0 || p.Base <= 0 {
		return 0
	}

	delay := p.Base
	for i := 1; i < retryCount; i++ {
		if delay > math.MaxInt64/2 {
			break
		}
		delay *= 2
		if p.Max > 0 && delay >= p.Max {
			return p.Max
		}
	}

	if p.Max > 0 && delay > p.Max {
		return p.Max
	}
	return delay
}

func (p ExponentialRetryPolicy) Exhausted(retryCount int) bool {
	return retryCount > p.MaxRetries
}
