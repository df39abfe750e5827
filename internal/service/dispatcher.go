// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// Dispatcher routes an action to the handler registered for its type.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[models.ActionType]ActionHandler

	logger *logger.Logger
}

// NewDispatcher returns an empty registry.
func NewDispatcher(logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[models.ActionType]ActionHandler),
		logger:   logger,
	}
}

// Register binds handler to actionType, replacing any previous binding.
func (d *Dispatcher) Register(actionType models.ActionType, handler ActionHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[actionType] = handler
}

// Types lists the registered action types in sorted order.
func (d *Dispatcher) Types() []models.ActionType {
	d.mu.RLock()
	defer d.mu.RUnlock()

	types := make([]models.ActionType, 0, len(d.handlers))
	for t := range d.handlers {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Dispatch applies action through its handler. An unregistered type is a
// permanent failure; a handler panic is recovered and reported as a
// transient failure.
func (d *Dispatcher) Dispatch(ctx context.Context, action models.PendingAction) (outcome models.Outcome, err error) {
	d.mu.RLock()
	handler, ok := d.handlers[action.Type]
	d.mu.RUnlock()

	if !ok {
		return models.OutcomePermanent, fmt.Errorf("%w: %q", ErrNoHandler, action.Type)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().
				Str("func", "Dispatcher.Dispatch").
				Str("action_id", action.ID).
				Str("action_type", action.Type.String()).
				Interface("panic", r).
				Msg("action handler panicked")
			outcome = models.OutcomeTransient
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()

	return handler.Apply(ctx, action)
}
