// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

// login exchanges {identifier, password} for a bearer token returned in
// the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, "*Handler.login", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Info().Str("func", "*Handler.login").Str("identifier", token.Identifier).Msg("signed in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, _ = utils.WriteJSON(w, models.SessionInfo{Identifier: token.Identifier}, http.StatusOK)
}

// session reports the identifier behind a valid token. Invalid tokens are
// rejected by the auth middleware before this runs.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	identifier, ok := utils.GetIdentifierFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.session", ErrInvalidAuthorizationHeader)
		return
	}

	_, _ = utils.WriteJSON(w, models.SessionInfo{Identifier: identifier}, http.StatusOK)
}
