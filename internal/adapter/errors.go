// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrNoToken        = errors.New("no bearer token in response")
	ErrInvalidAddress = errors.New("invalid server address")
)

// HTTPError is a non-2xx answer. Message is the server's "error" field, or
// the status text when the body carried none. It unwraps to one of the
// status sentinels.
type HTTPError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.kind
}
