// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control API of the sync client.
//
// Host environments use it to enqueue actions and forward connectivity
// events; the syncctl CLI uses it to inspect and drive the engine. Request
// tracing, access logging, body signature checks and response compression
// are handled here before requests reach the [service.SyncEngine].
package http
