// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-quiz-sync/internal/app"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/utils"
	"github.com/MKhiriev/go-quiz-sync/models"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.engine.GetStatus(r.Context()), http.StatusOK)
}

// manualSync blocks until the pass is over. The outcome, including an
// offline device, is reported in the body rather than the status code.
func (h *Handler) manualSync(w http.ResponseWriter, r *http.Request) {
	result := h.engine.ManualSync(r.Context())

	logger.FromRequest(r).Info().
		Bool("success", result.Success).
		Int("synced", result.SyncedCount).
		Str("message", result.Message).
		Msg("manual sync finished")

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) forceSync(w http.ResponseWriter, r *http.Request) {
	h.engine.ForceSync()
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSyncRequested}, http.StatusAccepted)
}

func (h *Handler) listFailed(w http.ResponseWriter, r *http.Request) {
	actions, err := h.engine.ListFailed(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listFailed").Msg("error listing failed actions")
		writeError(w, err)
		return
	}
	if actions == nil {
		actions = []models.FailedAction{}
	}

	utils.WriteJSON(w, actions, http.StatusOK)
}

func (h *Handler) retryFailed(w http.ResponseWriter, r *http.Request) {
	restored, err := h.engine.RetryFailed(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.retryFailed").Msg("error restoring failed actions")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: restored}, http.StatusOK)
}

func (h *Handler) clearFailed(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.engine.ClearFailed(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.clearFailed").Msg("error clearing failed actions")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: cleared}, http.StatusOK)
}
