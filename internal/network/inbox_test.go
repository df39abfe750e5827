// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
)

func TestInbox_SendAndReceive(t *testing.T) {
	ib := NewInbox[int](2, 10*time.Millisecond, logger.Nop())

	assert.True(t, ib.Send(1))
	assert.True(t, ib.Send(2))
	assert.Equal(t, 2, ib.Len())

	assert.Equal(t, 1, <-ib.C())
	ib.MarkReceived()
	assert.Equal(t, 1, ib.Len())

	stats := ib.Stats()
	assert.Equal(t, int64(2), stats.TotalSent)
	assert.Equal(t, int64(1), stats.TotalReceived)
}

func TestInbox_SendTimesOutWhenFull(t *testing.T) {
	ib := NewInbox[string](1, 5*time.Millisecond, logger.Nop())

	assert.True(t, ib.Send("a"))
	assert.False(t, ib.Send("b"))
	assert.Equal(t, int64(1), ib.Stats().TimeoutCount)
}
