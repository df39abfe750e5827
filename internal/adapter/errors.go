// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors produced by mapHTTPError for non-2xx responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTimeout      = errors.New("request timeout")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrUnexpectedStatus covers any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

var (
	// ErrTransport wraps failures that happened before a response arrived:
	// DNS, refused connections, resets and client-side timeouts.
	ErrTransport = errors.New("transport error")

	// ErrEncodingRequest is returned when a request body cannot be encoded.
	ErrEncodingRequest = errors.New("error encoding request body")

	// ErrDecodingResponse is returned when a 2xx response body cannot be
	// decoded.
	ErrDecodingResponse = errors.New("error decoding response body")
)
