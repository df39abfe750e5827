// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/hmac"
	"io"
	"net/http"

	"github.com/MKhiriev/go-quiz-sync/internal/utils"
)

const hashHeader = "X-Hash"

// verifyHash checks the X-Hash header against the HMAC-SHA256 of the raw
// request body. It is a no-op when no hash key is configured.
func (h *Handler) verifyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := h.logger
		log.Debug().Str("func", "*Handler.verifyHash").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifyHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		got := r.Header.Get(hashHeader)
		if got == "" {
			log.Err(ErrMissingHash).Str("func", "*Handler.verifyHash").Msg("unsigned request")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		want := utils.HashString(string(body), h.hashKey)
		if !hmac.Equal([]byte(got), []byte(want)) {
			log.Err(ErrHashMismatch).Str("func", "*Handler.verifyHash").
				Str("hash from request", got).
				Str("hashed body", want).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
