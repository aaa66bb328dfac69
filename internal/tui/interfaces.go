// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-creds-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tui_mock.go -package=mock

// Gate is the session gate as the terminal UI uses it.
type Gate interface {
	IsAuthenticated() bool
	Identifier() string
	SignIn(ctx context.Context, creds models.Credentials) error
	SignOut(ctx context.Context) error
}
