// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-quiz-sync/internal/adapter"
)

const versionPath = "/api/version"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get(versionPath, h.getVersion)
	router.Get(adapter.ControlStatusPath, h.getStatus)

	// producer writes, signed when a hash key is configured
	router.Group(func(r chi.Router) {
		r.Use(h.verifyHash)
		r.Post(adapter.ControlActionsPath, h.enqueue)
		r.Post(adapter.ControlHostEventsPath, h.hostEvent)
	})

	// queue listings can be long
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get(adapter.ControlActionsPath, h.listPending)
		r.Get(adapter.ControlFailedPath, h.listFailed)
	})

	router.Post(adapter.ControlManualSyncPath, h.manualSync)
	router.Post(adapter.ControlForceSyncPath, h.forceSync)
	router.Post(adapter.ControlRetryFailedPath, h.retryFailed)
	router.Delete(adapter.ControlFailedPath, h.clearFailed)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
