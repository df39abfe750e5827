// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Outcome is the classified result of dispatching one action.
type Outcome int

const (
	// OutcomeSuccess means the remote side applied (or had already applied)
	// the action. The action is removed from the queue.
	OutcomeSuccess Outcome = iota

	// OutcomeTransient means the attempt may succeed later: network errors,
	// timeouts, throttling, remote 5xx. The retry count is incremented.
	OutcomeTransient

	// OutcomePermanent means the action can never succeed as is: a malformed
	// payload or a validation rejection. The action goes to the failed bucket.
	OutcomePermanent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTransient:
		return "transient"
	case OutcomePermanent:
		return "permanent"
	default:
		return "unknown"
	}
}
