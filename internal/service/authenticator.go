// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
)

// NewAuthenticator builds the authenticator selected by cfg.Strategy.
// compareKey keys the HMAC used for constant-time comparison of static
// secrets.
func NewAuthenticator(cfg config.Auth, compareKey string, log *logger.Logger) (Authenticator, error) {
	switch cfg.Strategy {
	case config.AuthStrategyStatic, "":
		return NewStaticAuthenticator(cfg.Username, cfg.Password, compareKey, log), nil
	case config.AuthStrategyIdentity:
		return NewIdentityAuthenticator(cfg.IdentityURL, cfg.IdentityAPIKey, cfg.RequestTimeout, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAuthStrategy, cfg.Strategy)
	}
}
