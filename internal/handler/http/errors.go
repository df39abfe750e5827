// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported by the body signature middleware.
var (
	// ErrMissingHash is logged when a hash key is configured but the request
	// carries no X-Hash header.
	ErrMissingHash = errors.New("missing `X-Hash` header")

	// ErrHashMismatch is logged when the X-Hash header does not match the
	// HMAC of the request body.
	ErrHashMismatch = errors.New("`X-Hash` does not match request body")
)
