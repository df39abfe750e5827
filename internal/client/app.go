// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-sync/internal/adapter"
	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/handler"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/network"
	"github.com/MKhiriev/go-quiz-sync/internal/server"
	"github.com/MKhiriev/go-quiz-sync/internal/service"
	"github.com/MKhiriev/go-quiz-sync/internal/store"
	"github.com/MKhiriev/go-quiz-sync/internal/utils"
	"github.com/MKhiriev/go-quiz-sync/internal/workers"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// App is the sync client process: the engine, its background workers and
// the control API that drives them.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	monitor  *network.Monitor
	workers  *workers.Workers
	server   server.Server

	logger *logger.Logger
}

// NewApp opens the local store and wires every component described by cfg.
// The returned App owns the store; Run closes it on exit.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	userID, err := resolveUserID(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoUserID, err)
	}
	logger.Info().Int64("user_id", userID).Stringer("build", buildInfo).Msg("starting sync client")

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	// offline until the first probe answers
	monitor := network.NewMonitor(false, logger)
	services := service.NewClientServices(storages, remote, monitor, cfg, userID, logger)

	var wakeWatcher workers.Worker
	if cfg.Workers.WakeDir != "" {
		wakeWatcher = network.NewWakeWatcher(cfg.Workers.WakeDir, monitor, logger)
	}
	ws := workers.NewWorkers(
		monitor,
		network.NewProber(remote, monitor, cfg.Workers.ProbeInterval, logger),
		wakeWatcher,
	)

	handlers, err := handler.NewHandlers(services.Engine, buildInfo, cfg.Control, cfg.App, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Control, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		monitor:  monitor,
		workers:  ws,
		server:   srv,
		logger:   logger,
	}, nil
}

// Run starts the workers and the engine, serves the control API until ctx
// is cancelled or a termination signal arrives, and then shuts everything
// down in reverse order.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("error closing local storage")
		}
	}()

	a.workers.Run(ctx)
	defer a.workers.Wait()
	defer cancel()

	if err := a.services.Engine.Start(ctx); err != nil {
		return fmt.Errorf("start sync engine: %w", err)
	}
	defer a.services.Engine.Stop()

	return a.server.RunServer(ctx)
}

// resolveUserID prefers the configured user ID and falls back to the
// subject of the bearer token.
func resolveUserID(cfg config.ClientApp) (int64, error) {
	if cfg.UserID != 0 {
		return cfg.UserID, nil
	}
	return utils.ParseUserIDFromJWT(cfg.Token)
}
