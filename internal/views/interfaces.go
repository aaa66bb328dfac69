// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/views_mock.go -package=mock

// SessionGate is the part of the session gate the shell needs.
type SessionGate interface {
	IsAuthenticated() bool
	SignOut(ctx context.Context) error
}
