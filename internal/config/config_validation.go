// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can start a server.
// All failing groups are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	switch cfg.Auth.Strategy {
	case AuthStrategyStatic:
		if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
			errs = append(errs, ErrInvalidAuthConfigs)
		}
	case AuthStrategyIdentity:
		if cfg.Auth.IdentityURL == "" || cfg.Auth.RequestTimeout <= 0 {
			errs = append(errs, ErrInvalidAuthConfigs)
		}
	default:
		errs = append(errs, ErrUnknownAuthStrategy)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.StreamHeartbeat <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
