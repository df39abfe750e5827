// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks queued actions before they are accepted.
//
// A payload that can never be applied is rejected at enqueue time instead of
// being parked in the failed bucket after its first dispatch.
package validators

import "context"

// Validator validates a model, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
