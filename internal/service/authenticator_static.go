// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

const reasonInvalidCredentials = "Invalid identifier or password."

// staticAuthenticator accepts exactly one configured identifier/password
// pair. The password may be configured as a bcrypt hash.
type staticAuthenticator struct {
	username   string
	password   string
	compareKey string
	bcrypt     bool

	logger *logger.Logger
}

func NewStaticAuthenticator(username, password, compareKey string, log *logger.Logger) Authenticator {
	return &staticAuthenticator{
		username:   username,
		password:   password,
		compareKey: compareKey,
		bcrypt:     isBcryptHash(password),
		logger:     log,
	}
}

func (a *staticAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) error {
	// both comparisons always run
	userOK := utils.EqualHashed(creds.Identifier, a.username, a.compareKey)

	var passOK bool
	if a.bcrypt {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.password), []byte(creds.Password)) == nil
	} else {
		passOK = utils.EqualHashed(creds.Password, a.password, a.compareKey)
	}

	if !userOK || !passOK {
		logger.FromContext(ctx).Warn().Str("func", "*staticAuthenticator.Authenticate").
			Str("identifier", creds.Identifier).
			Msg("rejected sign-in")
		return newAuthError(reasonInvalidCredentials)
	}

	return nil
}

func isBcryptHash(s string) bool {
	if !strings.HasPrefix(s, "$2") {
		return false
	}
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
