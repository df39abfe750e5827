// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-quiz-sync/models"
)

// EventKind is one of the host connectivity events.
type EventKind string

const (
	EventWentOnline  EventKind = "went-online"
	EventWentOffline EventKind = "went-offline"
	EventWakeSignal  EventKind = "wake-signal"
)

// ErrUnknownEvent is returned by ParseEventKind for anything outside the
// host event contract.
var ErrUnknownEvent = errors.New("unknown host event")

// Event is a single host event together with where it came from.
type Event struct {
	Kind   EventKind
	Source string
	At     time.Time
}

// NewEvent stamps kind with the current time.
func NewEvent(kind EventKind, source string) Event {
	return Event{Kind: kind, Source: source, At: time.Now()}
}

// ParseEventKind accepts the three event names case-insensitively, plus the
// wake message type SYNC_PENDING_DATA as an alias of wake-signal.
func ParseEventKind(raw string) (EventKind, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == models.WakeMessageType {
		return EventWakeSignal, nil
	}

	switch kind := EventKind(strings.ToLower(normalized)); kind {
	case EventWentOnline, EventWentOffline, EventWakeSignal:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, raw)
	}
}
