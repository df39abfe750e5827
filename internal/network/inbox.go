// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
)

// Inbox is a typed, buffered message channel whose sends give up after a
// timeout instead of blocking the producer forever.
type Inbox[T any] struct {
	ch      chan T
	timeout time.Duration
	logger  *logger.Logger
	stats   InboxStats
}

// InboxStats tracks inbox usage.
type InboxStats struct {
	TotalSent     int64
	TotalReceived int64
	TimeoutCount  int64
}

// NewInbox creates an inbox with the given buffer size and send timeout.
func NewInbox[T any](bufferSize int, timeout time.Duration, logger *logger.Logger) *Inbox[T] {
	return &Inbox[T]{
		ch:      make(chan T, bufferSize),
		timeout: timeout,
		logger:  logger,
	}
}

// Send delivers msg, waiting at most the inbox timeout for buffer space.
// It reports whether the message was accepted.
func (ib *Inbox[T]) Send(msg T) bool {
	timer := time.NewTimer(ib.timeout)
	defer timer.Stop()

	select {
	case ib.ch <- msg:
		atomic.AddInt64(&ib.stats.TotalSent, 1)
		return true
	case <-timer.C:
		atomic.AddInt64(&ib.stats.TimeoutCount, 1)
		ib.logger.Warn().
			Dur("timeout", ib.timeout).
			Int("current_depth", len(ib.ch)).
			Msg("inbox send timeout")
		return false
	}
}

// C exposes the receive side for use in select statements. Callers that
// read from it directly should call MarkReceived.
func (ib *Inbox[T]) C() <-chan T {
	return ib.ch
}

// MarkReceived records a message taken from C.
func (ib *Inbox[T]) MarkReceived() {
	atomic.AddInt64(&ib.stats.TotalReceived, 1)
}

// Stats returns a snapshot of the counters.
func (ib *Inbox[T]) Stats() InboxStats {
	return InboxStats{
		TotalSent:     atomic.LoadInt64(&ib.stats.TotalSent),
		TotalReceived: atomic.LoadInt64(&ib.stats.TotalReceived),
		TimeoutCount:  atomic.LoadInt64(&ib.stats.TimeoutCount),
	}
}

// Len returns the number of buffered messages.
func (ib *Inbox[T]) Len() int {
	return len(ib.ch)
}
