// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client process runtime.
//
// It wires the local store, the connectivity monitor and its event sources,
// the sync engine and the control API into a single process lifecycle.
package client
