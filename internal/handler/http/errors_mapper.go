// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-quiz-sync/internal/app"
	"github.com/MKhiriev/go-quiz-sync/internal/network"
	"github.com/MKhiriev/go-quiz-sync/internal/service"
	"github.com/MKhiriev/go-quiz-sync/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order: the more specific validator errors
// come before the service error that wraps them.
var errorResponses = []struct {
	target error
	resp   errorResponse
}{
	{validators.ErrUnknownActionType, errorResponse{http.StatusBadRequest, app.MsgUnknownActionType}},
	{service.ErrNoHandler, errorResponse{http.StatusBadRequest, app.MsgUnknownActionType}},
	{service.ErrInvalidAction, errorResponse{http.StatusBadRequest, app.MsgInvalidPayload}},
	{network.ErrUnknownEvent, errorResponse{http.StatusBadRequest, app.MsgUnknownHostEvent}},
	{service.ErrEventDropped, errorResponse{http.StatusServiceUnavailable, app.MsgHostEventDropped}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError answers with the status mapped from err. Client errors carry
// the underlying reason; anything else is reported generically.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)

	message := resp.message
	if resp.status == http.StatusBadRequest {
		message += ": " + err.Error()
	}
	http.Error(w, message, resp.status)
}
