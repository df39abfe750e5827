// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
)

// syncScheduler turns triggers into passes. Every trigger (connectivity
// regained, the periodic tick, an enqueue while online, a wake signal)
// funnels into RequestPass; requests arriving while one is already queued
// are coalesced.
type syncScheduler struct {
	executor passRunner
	online   func() bool

	interval   time.Duration
	minSpacing time.Duration

	requests  chan struct{}
	forceNext atomic.Bool
	followUp  atomic.Bool

	mu         sync.Mutex
	reason     string
	lastPassAt time.Time
	deferred   *time.Timer
	cancel     context.CancelFunc
	wg         sync.WaitGroup

	now    func() time.Time
	logger *logger.Logger
}

func newSyncScheduler(executor passRunner, online func() bool, interval, minSpacing time.Duration, now func() time.Time, logger *logger.Logger) *syncScheduler {
	return &syncScheduler{
		executor:   executor,
		online:     online,
		interval:   interval,
		minSpacing: minSpacing,
		requests:   make(chan struct{}, 1),
		now:        now,
		logger:     logger,
	}
}

// RequestPass asks for a pass. It is a no-op, returning false, while
// offline or while a pass is running. Requests made during a pass are
// folded into one follow-up pass, which covers work enqueued after the
// running pass made its last reload.
func (s *syncScheduler) RequestPass(reason string) bool {
	if !s.online() {
		return false
	}
	if s.executor.IsSyncing() {
		s.followUp.Store(true)
		// the pass may have ended before the flag was set
		if !s.executor.IsSyncing() {
			s.settleFollowUp()
		}
		return false
	}
	s.submit(reason)
	return true
}

// settleFollowUp submits the follow-up pass if one was requested while a
// pass was running. It runs after every pass, including manual ones that
// bypass the loop.
func (s *syncScheduler) settleFollowUp() {
	if s.followUp.Swap(false) {
		s.submit("follow-up")
	}
}

// Force asks for a pass that skips throttling and backoff windows.
func (s *syncScheduler) Force(reason string) {
	s.forceNext.Store(true)
	s.submit(reason)
}

func (s *syncScheduler) submit(reason string) {
	s.mu.Lock()
	s.reason = reason
	s.mu.Unlock()

	select {
	case s.requests <- struct{}{}:
	default:
	}
}

// Start stops any previously running loop, then launches the scheduler
// goroutine. If the interval is zero or negative it defaults to 5 minutes.
// The goroutine exits when ctx is cancelled or Stop is called.
func (s *syncScheduler) Start(ctx context.Context) {
	interval := s.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	s.Stop()

	s.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				s.trigger(loopCtx, "periodic", false)
			case <-s.requests:
				s.mu.Lock()
				reason := s.reason
				s.mu.Unlock()
				s.trigger(loopCtx, reason, s.forceNext.Swap(false))
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has fully exited. A running pass
// finishes its current store write first. Safe to call when the scheduler is
// not running.
func (s *syncScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	if s.deferred != nil {
		s.deferred.Stop()
		s.deferred = nil
	}
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// trigger runs a pass unless it is throttled. A throttled request arms a
// single timer that re-submits once the spacing has elapsed.
func (s *syncScheduler) trigger(ctx context.Context, reason string, force bool) {
	if !force {
		if !s.online() {
			return
		}
		if wait := s.throttle(); wait > 0 {
			s.deferPass(wait)
			return
		}
	}

	result, err := s.executor.RunPass(ctx, reason, force)

	s.mu.Lock()
	s.lastPassAt = s.now()
	s.mu.Unlock()

	s.settleFollowUp()

	switch {
	case errors.Is(err, ErrOffline), errors.Is(err, ErrPassInProgress):
		s.logger.Debug().Err(err).Str("reason", reason).Msg("pass request skipped")
	case err != nil:
		s.logger.Err(err).Str("func", "syncScheduler.trigger").Str("reason", reason).Msg("sync pass failed")
	default:
		s.logger.Debug().Str("reason", reason).Int("succeeded", result.Succeeded).Msg("scheduled pass done")
	}
}

// throttle returns how long a non-forced pass must still wait.
func (s *syncScheduler) throttle() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.minSpacing <= 0 || s.lastPassAt.IsZero() {
		return 0
	}
	return s.minSpacing - s.now().Sub(s.lastPassAt)
}

func (s *syncScheduler) deferPass(wait time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deferred != nil {
		return
	}
	s.deferred = time.AfterFunc(wait, func() {
		s.mu.Lock()
		s.deferred = nil
		s.mu.Unlock()
		s.submit("throttled")
	})
}
