// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-creds-manager/internal/app"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
)

// verifyHashing checks the HashSHA256 header against the raw request body
// when a hash key is configured. The body is restored for the next handler.
func (h *Handler) verifyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.verifyHashing").Msg("checking hash begins")

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxItemBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifyHashing").Msg("failed to read request body")
			utils.WriteError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(utils.HashHeader)
		if !h.hasher.Verify(body, hashFromRequest) {
			log.Error().Str("func", "*Handler.verifyHashing").
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
