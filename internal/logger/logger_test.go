// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry), "line %q", sc.Text())
		entries = append(entries, entry)
	}
	require.NoError(t, sc.Err())
	return entries
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Str("path", "qa/automation1").Msg("snapshot pushed")

	entries := decodeEntries(t, buf.Bytes())
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "snapshot pushed", entry["message"])
	assert.Equal(t, "qa/automation1", entry["path"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_LogPath(t *testing.T) {
	execPath, err := os.Executable()
	require.NoError(t, err)

	got, err := clientLogPath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(execPath), clientLogFile), got)
}

func TestOpenLogFile(t *testing.T) {
	t.Run("appends JSON entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), clientLogFile)

		for _, msg := range []string{"session restored", "signed out"} {
			out := openLogFile(path)
			f, ok := out.(*os.File)
			require.True(t, ok, "expected a file, got %T", out)

			newLogger(f, "client").Info().Msg(msg)
			require.NoError(t, f.Close())
		}

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		entries := decodeEntries(t, raw)
		require.Len(t, entries, 2)
		assert.Equal(t, "session restored", entries[0]["message"])
		assert.Equal(t, "signed out", entries[1]["message"])
		assert.Equal(t, "client", entries[1]["role"])
	})

	t.Run("unwritable location falls back to stderr", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", clientLogFile)

		assert.Same(t, os.Stderr, openLogFile(path))
	})
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

// ── child loggers ────────────────────────────────────────────────────────────

func TestChildLoggers(t *testing.T) {
	tests := []struct {
		name      string
		derive    func(l *Logger) *Logger
		wantKey   string
		wantValue string
	}{
		{
			name:   "child keeps parent fields",
			derive: func(l *Logger) *Logger { return l.GetChildLogger() },
		},
		{
			name:      "component tag",
			derive:    func(l *Logger) *Logger { return l.WithComponent("broker") },
			wantKey:   "component",
			wantValue: "broker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			parent := newLogger(&buf, "server")

			child := tt.derive(parent)
			require.NotSame(t, parent, child)
			child.Info().Msg("from child")
			parent.Info().Msg("from parent")

			entries := decodeEntries(t, buf.Bytes())
			require.Len(t, entries, 2)
			assert.Equal(t, "server", entries[0]["role"])
			if tt.wantKey != "" {
				assert.Equal(t, tt.wantValue, entries[0][tt.wantKey])
				assert.NotContains(t, entries[1], tt.wantKey)
			}
		})
	}
}

// ── context ──────────────────────────────────────────────────────────────────

func TestFromContext_WithoutLogger(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_CarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	base := newLogger(&buf, "server")

	// the way the trace-id middleware tags a request
	reqLogger := base.GetChildLogger()
	reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "7d1c2f0e-trace")
	})
	req := httptest.NewRequest(http.MethodGet, "/api/credentials/qa", nil)
	req = req.WithContext(reqLogger.WithContext(req.Context()))

	FromRequest(req).Info().Msg("handling request")
	base.Info().Msg("outside request")

	entries := decodeEntries(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "7d1c2f0e-trace", entries[0]["trace_id"])
	assert.Equal(t, "server", entries[0]["role"])
	assert.NotContains(t, entries[1], "trace_id")
}

func TestFromRequest_WithoutLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NotNil(t, FromRequest(req))
}
