// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-quiz-sync/internal/adapter"
	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/store"
)

// ClientServices bundles the sync engine with the pieces it was built from.
type ClientServices struct {
	Dispatcher *Dispatcher
	Policy     RetryPolicy
	Engine     SyncEngine
}

// NewClientServices registers the remote handlers and builds the engine of
// userID on top of storages and monitor.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteAPI,
	monitor ConnectivityMonitor,
	cfg *config.ClientConfig,
	userID int64,
	logger *logger.Logger,
) *ClientServices {
	policy := NewRetryPolicy(cfg.Workers)

	dispatcher := NewDispatcher(logger)
	RegisterRemoteHandlers(dispatcher, remote, policy)

	engine := NewSyncEngine(
		storages.ActionRepository,
		storages.BlobRepository,
		dispatcher,
		monitor,
		policy,
		NewEngineSettings(cfg, userID),
		logger,
	)

	return &ClientServices{
		Dispatcher: dispatcher,
		Policy:     policy,
		Engine:     engine,
	}
}
