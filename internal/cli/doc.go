// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements syncctl, the command-line front end of the local
// control API. Every command is a single control API call whose result is
// rendered as text or JSON.
package cli
