// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/mock"
)

// recordingPublisher collects published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingPublisher) Publish(ev Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return true
}

func (r *recordingPublisher) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestProber_Probe(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteAPI(ctrl)
	pub := &recordingPublisher{}

	gomock.InOrder(
		remote.EXPECT().Ping(gomock.Any()).Return(nil),
		remote.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)

	p := NewProber(remote, pub, time.Second, logger.Nop())
	p.Probe(context.Background())
	p.Probe(context.Background())

	assert.Equal(t, []EventKind{EventWentOnline, EventWentOffline}, pub.kinds())
}

func TestProber_ProbeSkipsPublishAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteAPI(ctrl)
	pub := &recordingPublisher{}

	ctx, cancel := context.WithCancel(context.Background())
	remote.EXPECT().Ping(gomock.Any()).DoAndReturn(func(context.Context) error {
		cancel()
		return context.Canceled
	})

	NewProber(remote, pub, time.Second, logger.Nop()).Probe(ctx)

	assert.Empty(t, pub.kinds())
}

func TestProber_RunProbesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteAPI(ctrl)
	pub := &recordingPublisher{}

	remote.EXPECT().Ping(gomock.Any()).Return(nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewProber(remote, pub, time.Hour, logger.Nop()).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(pub.kinds()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
