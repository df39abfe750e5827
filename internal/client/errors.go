// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNoUserID is returned by NewApp when neither a user ID nor a token with
// a numeric subject is configured.
var ErrNoUserID = errors.New("cannot determine queue owner")
