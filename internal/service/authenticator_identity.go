// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

// identityReasons maps identity-service error codes to the messages shown
// on the sign-in form.
var identityReasons = map[string]string{
	"EMAIL_NOT_FOUND":             "There is no user record corresponding to this identifier.",
	"INVALID_PASSWORD":            "The password is invalid.",
	"INVALID_LOGIN_CREDENTIALS":   "Invalid email or password.",
	"INVALID_EMAIL":               "The email address is badly formatted.",
	"MISSING_PASSWORD":            "Password is required.",
	"USER_DISABLED":               "The user account has been disabled by an administrator.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Access to this account has been temporarily disabled due to many failed login attempts. Try again later.",
}

type identitySignInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identitySignInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type identityErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// identityAuthenticator exchanges an email/password pair with an external
// identity service speaking the signInWithPassword protocol.
type identityAuthenticator struct {
	client *utils.HTTPClient
	url    string
	apiKey string

	logger *logger.Logger
}

func NewIdentityAuthenticator(url, apiKey string, timeout time.Duration, log *logger.Logger) Authenticator {
	return &identityAuthenticator{
		client: utils.NewHTTPClient(utils.WithTimeout(timeout)),
		url:    url,
		apiKey: apiKey,
		logger: log,
	}
}

func (a *identityAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) error {
	var (
		result  identitySignInResponse
		failure identityErrorResponse
	)

	req := a.client.R().
		SetContext(ctx).
		SetBody(identitySignInRequest{
			Email:             creds.Identifier,
			Password:          creds.Password,
			ReturnSecureToken: true,
		}).
		SetResult(&result).
		SetError(&failure)
	if a.apiKey != "" {
		req.SetQueryParam("key", a.apiKey)
	}

	resp, err := req.Post(a.url)
	if err != nil {
		a.logger.Err(err).Str("func", "*identityAuthenticator.Authenticate").Msg("identity service request failed")
		return fmt.Errorf("%w: %w", ErrIdentityProviderUnavailable, err)
	}

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrIdentityProviderUnavailable, resp.StatusCode())
	case resp.IsError():
		reason := identityReason(failure.Error.Message)
		a.logger.Warn().Str("func", "*identityAuthenticator.Authenticate").
			Str("identifier", creds.Identifier).
			Str("reason", reason).
			Msg("identity service rejected sign-in")
		return newAuthError(reason)
	}

	a.logger.Debug().Str("func", "*identityAuthenticator.Authenticate").
		Str("local_id", result.LocalID).
		Msg("identity service accepted sign-in")
	return nil
}

// identityReason turns "CODE" or "CODE : details" into a readable reason.
func identityReason(message string) string {
	code, details, _ := strings.Cut(message, " : ")
	code = strings.TrimSpace(code)

	if reason, ok := identityReasons[code]; ok {
		return reason
	}
	if details = strings.TrimSpace(details); details != "" {
		return details
	}
	if code != "" {
		return code
	}
	return reasonInvalidCredentials
}
