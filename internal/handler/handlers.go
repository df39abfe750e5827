// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/handler/http"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/service"
	"github.com/MKhiriev/go-quiz-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the control API handlers for engine. Producer writes
// are verified against appCfg.HashKey when it is set.
func NewHandlers(
	engine service.SyncEngine,
	buildInfo models.AppBuildInfo,
	cfg config.ClientControl,
	appCfg config.ClientApp,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(engine, buildInfo, appCfg.HashKey, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
