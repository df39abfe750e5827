// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
)

const (
	inboxBufferSize  = 64
	inboxSendTimeout = time.Second
)

// Publisher accepts host events. Event sources depend on this rather than on
// the Monitor itself.
type Publisher interface {
	Publish(ev Event) bool
}

// Monitor holds the current connectivity state and fans transitions out to
// subscribers.
//
// Events published through Publish are applied by Run in arrival order.
// Handle applies an event synchronously and is meant for callers that already
// serialise their own events, such as tests.
type Monitor struct {
	online atomic.Bool
	inbox  *Inbox[Event]

	mu           sync.RWMutex
	onTransition []func(online bool)
	onWake       []func()

	logger *logger.Logger
}

// NewMonitor returns a Monitor starting in the given state.
func NewMonitor(initiallyOnline bool, logger *logger.Logger) *Monitor {
	m := &Monitor{
		inbox:  NewInbox[Event](inboxBufferSize, inboxSendTimeout, logger),
		logger: logger,
	}
	m.online.Store(initiallyOnline)
	return m
}

// IsOnline reports the last known connectivity state.
func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// OnTransition registers fn to be called with the new state whenever the
// state actually changes. Callbacks run on the event loop and must not block.
func (m *Monitor) OnTransition(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onTransition = append(m.onTransition, fn)
}

// OnWake registers fn to be called for every wake-signal.
func (m *Monitor) OnWake(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onWake = append(m.onWake, fn)
}

// Publish queues ev for the event loop. It returns false when the inbox
// stayed full for the whole send timeout.
func (m *Monitor) Publish(ev Event) bool {
	return m.inbox.Send(ev)
}

// SetOnline applies a went-online or went-offline event synchronously.
func (m *Monitor) SetOnline(online bool) {
	kind := EventWentOffline
	if online {
		kind = EventWentOnline
	}
	m.Handle(NewEvent(kind, "direct"))
}

// Handle applies ev synchronously.
func (m *Monitor) Handle(ev Event) {
	switch ev.Kind {
	case EventWentOnline, EventWentOffline:
		online := ev.Kind == EventWentOnline
		if !m.online.CompareAndSwap(!online, online) {
			return
		}
		m.logger.Info().
			Bool("online", online).
			Str("source", ev.Source).
			Msg("connectivity changed")

		m.mu.RLock()
		subscribers := append([]func(bool){}, m.onTransition...)
		m.mu.RUnlock()
		for _, fn := range subscribers {
			fn(online)
		}

	case EventWakeSignal:
		m.logger.Debug().Str("source", ev.Source).Msg("wake signal received")

		m.mu.RLock()
		subscribers := append([]func(){}, m.onWake...)
		m.mu.RUnlock()
		for _, fn := range subscribers {
			fn()
		}

	default:
		m.logger.Warn().Str("kind", string(ev.Kind)).Msg("ignoring unknown host event")
	}
}

// Run applies published events until ctx is cancelled. It implements
// workers.Worker.
func (m *Monitor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			stats := m.inbox.Stats()
			m.logger.Debug().
				Int64("events_sent", stats.TotalSent).
				Int64("events_handled", stats.TotalReceived).
				Int64("events_dropped", stats.TimeoutCount).
				Int("events_unhandled", m.inbox.Len()).
				Msg("network monitor stopped")
			return
		case ev := <-m.inbox.C():
			m.inbox.MarkReceived()
			m.Handle(ev)
		}
	}
}
