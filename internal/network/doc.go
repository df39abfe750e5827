// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks whether the device can reach the remote backend.
//
// Host environments report connectivity through three events: went-online,
// went-offline and wake-signal. Events arrive from several sources (the
// periodic [Prober], the spool-directory [WakeWatcher] and the control API)
// and are funnelled through one typed [Inbox] into the [Monitor], which
// applies them in order and notifies subscribers only on real changes.
package network
