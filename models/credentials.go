// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the two-field sign-in form shared by every authenticator.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Session is the locally persisted result of a successful sign-in.
type Session struct {
	Identifier string
	Token      string
	CreatedAt  time.Time
}

// SessionInfo is returned by the server for a valid token.
type SessionInfo struct {
	Identifier string `json:"identifier"`
}
