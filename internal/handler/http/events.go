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

// hostEvent forwards a connectivity event from the host environment. The
// event is applied asynchronously, so success means it was queued.
func (h *Handler) hostEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.HostEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.hostEvent").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.engine.HandleHostEvent(r.Context(), req.Type); err != nil {
		log.Err(err).Str("func", "*Handler.hostEvent").Str("event", req.Type).Msg("host event rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEventAccepted}, http.StatusAccepted)
}
