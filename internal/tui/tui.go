// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the credentials client, built
// on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-creds-manager/internal/adapter"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/models"
)

// TUI runs the interactive program against a server adapter.
type TUI struct {
	gate      Gate
	server    adapter.ServerAdapter
	timeout   time.Duration
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(gate Gate, server adapter.ServerAdapter, timeout time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		gate:      gate,
		server:    server,
		timeout:   timeout,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newModel(ctx, t.gate, t.server, t.timeout, t.buildInfo, t.logger)
	t.server.SetStreamErrorHandler(m.bus.streamFailed)
	defer t.server.SetStreamErrorHandler(nil)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if fm, ok := final.(*model); ok {
		fm.closeViews()
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
