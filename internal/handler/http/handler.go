// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/service"
	"github.com/MKhiriev/go-quiz-sync/models"
)

type Handler struct {
	engine    service.SyncEngine
	buildInfo models.AppBuildInfo

	// hashKey enables X-Hash verification of request bodies when set.
	hashKey string

	logger *logger.Logger
}

func NewHandler(engine service.SyncEngine, buildInfo models.AppBuildInfo, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		engine:    engine,
		buildInfo: buildInfo,
		hashKey:   hashKey,
		logger:    logger,
	}
}
