// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-creds-manager/internal/app"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/service"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/internal/validators"
	"github.com/MKhiriev/go-creds-manager/models"
)

// errorStatusMap is checked in order; the first match wins. Unknown folder
// types come before ErrValidation because validation errors wrap them.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{models.ErrUnknownFolderType, http.StatusNotFound},
	{validators.ErrUnknownFolderType, http.StatusNotFound},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrIntegrityCheckFailed, http.StatusBadRequest},
	{service.ErrValidation, http.StatusBadRequest},
	{models.ErrInvalidPath, http.StatusBadRequest},
	{models.ErrInvalidSubfolderName, http.StatusBadRequest},
	{models.ErrUnsupportedValue, http.StatusBadRequest},
	{store.ErrWriteToFolder, http.StatusBadRequest},

	{service.ErrAuth, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{service.ErrIdentityProviderUnavailable, http.StatusBadGateway},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
	{store.ErrStoreClosed, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors
// are reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	message := err.Error()
	var authErr *service.AuthError
	switch {
	case errors.As(err, &authErr):
		message = authErr.Reason
	case status == http.StatusInternalServerError:
		message = app.MsgInternalServerError
	}

	utils.WriteError(w, message, status)
}
