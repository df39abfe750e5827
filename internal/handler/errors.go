// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the control API
// address is empty. The client cannot be driven without it, so this is a
// fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
