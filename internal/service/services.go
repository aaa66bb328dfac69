// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/store"
)

type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authenticator, err := NewAuthenticator(cfg.Auth, cfg.App.TokenSignKey, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating authenticator: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(authenticator, cfg.App, logger),
		CredentialService: NewCredentialValidationService().Wrap(NewCredentialService(storages.Store, logger)),
		AppInfoService:    appInfo,
	}, nil
}
