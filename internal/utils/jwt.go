// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token carries no subject claim.
var ErrEmptySubject = errors.New("empty subject")

// ParseUserIDFromJWT extracts the numeric user ID from the subject claim of
// tokenString without verifying the signature. The client never holds the
// signing key; the remote API verifies the token on every request.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error getting subject from token: %w", err)
	}
	if sub == "" {
		return 0, ErrEmptySubject
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to user id: %w", err)
	}
	return id, nil
}
