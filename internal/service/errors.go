// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidAction wraps validator errors returned by Enqueue.
	ErrInvalidAction = errors.New("invalid action")

	// ErrOffline is returned when a pass is requested while the device has
	// no connectivity.
	ErrOffline = errors.New("device is offline")

	// ErrPassInProgress is returned when a pass is requested while another
	// one is still running.
	ErrPassInProgress = errors.New("sync pass already in progress")

	// ErrEventDropped is returned when a host event could not be queued.
	ErrEventDropped = errors.New("host event dropped")
)

// Dispatch errors. They are recorded as an action's last error and drive
// its classification.
var (
	// ErrNoHandler means no handler is registered for the action type.
	ErrNoHandler = errors.New("no handler registered for action type")

	// ErrHandlerPanic means the handler panicked while applying the action.
	ErrHandlerPanic = errors.New("action handler panicked")

	// ErrDispatchTimeout means the handler did not return within the
	// dispatch timeout.
	ErrDispatchTimeout = errors.New("dispatch timed out")

	// ErrDecodingPayload means the stored payload does not decode into the
	// shape its type requires.
	ErrDecodingPayload = errors.New("error decoding action payload")
)
