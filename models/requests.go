// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// EnqueueRequest is the body of POST /api/actions.
type EnqueueRequest struct {
	Type    ActionType      `json:"action_type"`
	Payload json.RawMessage `json:"payload"`
}

// EnqueueAck acknowledges an accepted action.
//
// Durable is false when the local store rejected the write and the action is
// only held in memory until the store recovers.
type EnqueueAck struct {
	ID         string    `json:"id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
	Durable    bool      `json:"durable"`
}

// HostEventRequest is the body of POST /api/host/events.
type HostEventRequest struct {
	Type string `json:"type"`
}

// CountResponse reports how many failed actions an operation touched.
type CountResponse struct {
	Count int `json:"count"`
}

// MessageResponse carries a human-readable message, mostly for errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// WakeMessage is the message a host wake-up delivers to the engine.
type WakeMessage struct {
	Type string `json:"type"`
}

// WakeMessageType is the only WakeMessage type the engine reacts to.
const WakeMessageType = "SYNC_PENDING_DATA"
