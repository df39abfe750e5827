// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-quiz-sync/internal/app"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/internal/utils"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// enqueue answers 201 for a durable action and 202 when the action is only
// held in memory because the local store rejected it.
func (h *Handler) enqueue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EnqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.enqueue").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	ack, err := h.engine.Enqueue(r.Context(), req.Type, req.Payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.enqueue").Str("action_type", req.Type.String()).Msg("action rejected")
		writeError(w, err)
		return
	}

	status := http.StatusCreated
	if !ack.Durable {
		status = http.StatusAccepted
	}
	utils.WriteJSON(w, ack, status)
}

func (h *Handler) listPending(w http.ResponseWriter, r *http.Request) {
	actions, err := h.engine.ListPending(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listPending").Msg("error listing pending actions")
		writeError(w, err)
		return
	}
	if actions == nil {
		actions = []models.PendingAction{}
	}

	utils.WriteJSON(w, actions, http.StatusOK)
}
