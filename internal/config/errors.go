// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAdapterConfigs is returned when the remote API address or
	// request timeout is missing.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs is returned when the local store DSN is empty
	// or points at an in-memory database, which would lose the queue on exit.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs is returned when neither a user ID nor a token is set.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidWorkerConfigs is returned when a scheduler timing or the retry
	// policy is out of range.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")

	// ErrInvalidHealthConfigs is returned when health thresholds contradict
	// each other.
	ErrInvalidHealthConfigs = errors.New("invalid health configuration")
)
