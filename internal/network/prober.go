// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
)

// Pinger checks that the remote backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Prober periodically pings the backend and publishes went-online or
// went-offline depending on the result.
type Prober struct {
	pinger    Pinger
	publisher Publisher
	interval  time.Duration
	logger    *logger.Logger
}

// NewProber returns a Prober that pings every interval. Each ping is bounded
// by the interval so that probes never overlap.
func NewProber(pinger Pinger, publisher Publisher, interval time.Duration, logger *logger.Logger) *Prober {
	return &Prober{
		pinger:    pinger,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

// Run probes immediately and then on every tick until ctx is cancelled.
func (p *Prober) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

// Probe performs a single ping and publishes its outcome.
func (p *Prober) Probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.pinger.Ping(probeCtx)
	if ctx.Err() != nil {
		return
	}

	kind := EventWentOnline
	if err != nil {
		kind = EventWentOffline
		p.logger.Debug().Err(err).Str("func", "Prober.Probe").Msg("backend unreachable")
	}
	p.publisher.Publish(NewEvent(kind, "prober"))
}
