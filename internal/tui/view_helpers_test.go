// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-creds-manager/internal/adapter"
	"github.com/MKhiriev/go-creds-manager/internal/app"
	"github.com/MKhiriev/go-creds-manager/internal/session"
	"github.com/MKhiriev/go-creds-manager/internal/views"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "token", max: 10, want: "token"},
		{name: "exact", in: "token", max: 5, want: "token"},
		{name: "truncated", in: "automation-environment", max: 10, want: "automat..."},
		{name: "tiny limit", in: "automation", max: 2, want: "au"},
		{name: "no limit", in: "automation", max: 0, want: "automation"},
		{name: "multibyte", in: "пароль-админа", max: 8, want: "парол..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestRenderTable(t *testing.T) {
	header := []string{"Subfolder", "email", "token"}
	rows := [][]string{
		{"automation1", "a@example.com", "-"},
		{"automation2", "b@example.com", "t-2"},
	}

	out := renderTable(header, rows, 1, 0)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "Subfolder")
	assert.Contains(t, lines[0], "token")
	assert.True(t, strings.HasPrefix(lines[2], "  automation1"))
	assert.True(t, strings.HasPrefix(lines[3], "> "))
	assert.Contains(t, lines[3], "automation2")
	assert.Contains(t, lines[3], "t-2")

	// columns line up across rows
	assert.Equal(t, strings.Index(lines[2], "│"), strings.Index(lines[3], "│"))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "auth rejection",
			err:  fmt.Errorf("sign in: %w", &session.AuthError{Reason: "User not found"}),
			want: "User not found",
		},
		{
			name: "validation",
			err:  views.ErrEmptyKeyWithValue,
			want: app.MsgEmptyKeyWithValue,
		},
		{
			name: "gateway down",
			err:  fmt.Errorf("%w: %w", views.ErrStore, adapter.ErrBadGateway),
			want: app.MsgServerUnavailable,
		},
		{
			name: "connection refused",
			err:  errors.New("Post \"http://localhost:8080/api/auth/login\": dial tcp [::1]:8080: connect: connection refused"),
			want: app.MsgServerUnavailable,
		},
		{
			name: "server message",
			err:  &adapter.HTTPError{StatusCode: 409, Message: "subfolder is being written"},
			want: "subfolder is being written",
		},
		{
			name: "anything else",
			err:  errors.New("unexpected end of JSON input"),
			want: "unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
