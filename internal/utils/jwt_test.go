// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    "quiz-backend",
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-key"))
	require.NoError(t, err)
	return token
}

func TestParseUserIDFromJWT_Success(t *testing.T) {
	id, err := ParseUserIDFromJWT(signedToken(t, "42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseUserIDFromJWT_EmptySubject(t *testing.T) {
	_, err := ParseUserIDFromJWT(signedToken(t, ""))
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestParseUserIDFromJWT_NonNumericSubject(t *testing.T) {
	_, err := ParseUserIDFromJWT(signedToken(t, "alice"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error converting subject to user id")
}

func TestParseUserIDFromJWT_Malformed(t *testing.T) {
	_, err := ParseUserIDFromJWT("not-a-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing token")
}
