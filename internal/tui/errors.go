// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-creds-manager/internal/adapter"
	"github.com/MKhiriev/go-creds-manager/internal/app"
	"github.com/MKhiriev/go-creds-manager/internal/session"
	"github.com/MKhiriev/go-creds-manager/internal/views"
)

// humanizeError returns the text shown on screen for err.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		return authErr.Reason
	}
	if errors.Is(err, views.ErrValidation) {
		return views.Message(err)
	}
	if errors.Is(err, adapter.ErrServiceUnavailable) || errors.Is(err, adapter.ErrBadGateway) {
		return app.MsgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return err.Error()
}
