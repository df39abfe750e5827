// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-quiz-sync engine, its control API and the syncctl CLI.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, manual sync results or log entries to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording between the server side of the control API and its clients.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnknownActionType is returned when an enqueue request names an action
	// type no handler is registered for.
	MsgUnknownActionType = "unknown action type"

	// MsgInvalidPayload is returned when an action payload is empty, is not
	// valid JSON for its type, or breaks a field rule.
	MsgInvalidPayload = "invalid action payload"

	// MsgUnknownHostEvent is returned when a host event is not one of
	// went-online, went-offline, wake-signal or SYNC_PENDING_DATA.
	MsgUnknownHostEvent = "unknown host event"

	// MsgHostEventDropped is returned when the event inbox stayed full.
	MsgHostEventDropped = "host event dropped, try again"

	// MsgSyncRequested is returned when a forced pass has been queued.
	MsgSyncRequested = "sync requested"

	// MsgEventAccepted is returned when a host event has been queued.
	MsgEventAccepted = "event accepted"

	// MsgDeviceOffline is the manual sync message while offline.
	MsgDeviceOffline = "device is offline"

	// MsgSyncInProgress is the manual sync message when a pass is already
	// running.
	MsgSyncInProgress = "sync already in progress"

	// MsgNothingToSync is the manual sync message for an empty queue.
	MsgNothingToSync = "nothing to sync"

	// MsgSyncInterrupted is the manual sync message when the pass stopped
	// early because connectivity was lost or the engine shut down.
	MsgSyncInterrupted = "sync interrupted"

	// MsgSyncFailed is the manual sync message when the pass could not run.
	MsgSyncFailed = "sync failed"
)
