// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the control API server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// the process receives SIGTERM, SIGINT or SIGQUIT.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
