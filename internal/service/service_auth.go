// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/internal/validators"
	"github.com/MKhiriev/go-creds-manager/models"
)

// authService checks credentials with an Authenticator and manages the JWT
// lifecycle.
type authService struct {
	authenticator Authenticator
	validator     validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService returns an AuthService issuing tokens with the parameters
// of cfg. The service is safe for concurrent use.
func NewAuthService(authenticator Authenticator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		authenticator: authenticator,
		validator:     validators.NewCredentialValidator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates creds and returns a signed token for the identifier.
//
// Returns:
//   - ErrValidation if the identifier or password is empty.
//   - an [*AuthError] (matching ErrAuth) if the credentials are rejected.
//   - ErrIdentityProviderUnavailable if the decision could not be made.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := a.authenticator.Authenticate(ctx, creds); err != nil {
		if !errors.Is(err, ErrAuth) {
			log.Err(err).Str("func", "*authService.Login").Msg("authenticator failed")
		}
		return models.Token{}, err
	}

	return a.CreateToken(ctx, creds.Identifier)
}

// CreateToken issues a signed JWT whose subject is identifier.
func (a *authService) CreateToken(ctx context.Context, identifier string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, identifier, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Every failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
