// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/mock"
	"github.com/MKhiriev/go-creds-manager/internal/service"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "creds-server",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T) (service.AuthService, *mock.MockAuthenticator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authenticator := mock.NewMockAuthenticator(ctrl)
	return service.NewAuthService(authenticator, testAppConfig, logger.Nop()), authenticator
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, authenticator := newTestAuthService(t)
	creds := models.Credentials{Identifier: "qa-lead@example.com", Password: "p"}

	authenticator.EXPECT().Authenticate(gomock.Any(), creds).Return(nil)

	token, err := svc.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, creds.Identifier, token.Identifier)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, creds.Identifier, parsed.Identifier)
}

func TestAuthService_Login_ValidationBeforeAuthenticator(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.Credentials{Identifier: " ", Password: "p"})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestAuthService_Login_Rejected(t *testing.T) {
	svc, authenticator := newTestAuthService(t)
	creds := models.Credentials{Identifier: "a", Password: "p"}

	authenticator.EXPECT().Authenticate(gomock.Any(), creds).
		Return(&service.AuthError{Reason: "The password is invalid."})

	_, err := svc.Login(context.Background(), creds)
	assert.ErrorIs(t, err, service.ErrAuth)
	assert.EqualError(t, err, "The password is invalid.")
}

func TestAuthService_Login_ProviderUnavailable(t *testing.T) {
	svc, authenticator := newTestAuthService(t)

	authenticator.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		Return(errors.Join(service.ErrIdentityProviderUnavailable, errors.New("dial tcp")))

	_, err := svc.Login(context.Background(), models.Credentials{Identifier: "a", Password: "p"})
	assert.ErrorIs(t, err, service.ErrIdentityProviderUnavailable)
	assert.NotErrorIs(t, err, service.ErrAuth)
}

// ── tokens ──────────────────────────────────────────────────────────────────

func TestAuthService_CreateToken_EmptyIdentifier(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	svc, _ := newTestAuthService(t)

	foreign, err := utils.GenerateJWTToken("creds-server", "a", time.Hour, "other-key")
	require.NoError(t, err)
	wrongIssuer, err := utils.GenerateJWTToken("someone-else", "a", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken("creds-server", "a", -time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-jwt",
		"foreign key":  foreign.SignedString,
		"wrong issuer": wrongIssuer.SignedString,
		"expired":      expired.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)
		})
	}
}
