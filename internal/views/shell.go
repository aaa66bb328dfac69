// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"context"

	"github.com/MKhiriev/go-creds-manager/internal/session"
)

// Page selects which view the shell shows.
type Page int

const (
	// PageHome shows the [Editor].
	PageHome Page = iota
	// PageView shows the [Browser].
	PageView
)

func (p Page) String() string {
	if p == PageView {
		return "view"
	}
	return "home"
}

// Shell switches between the editor and the browser. It only changes page
// on explicit navigation and is usable only while the gate is signed in.
type Shell struct {
	gate SessionGate
	page Page
}

func NewShell(gate SessionGate) *Shell {
	return &Shell{gate: gate, page: PageHome}
}

func (s *Shell) Page() Page {
	return s.page
}

// Available reports whether the shell may be shown.
func (s *Shell) Available() bool {
	return s.gate.IsAuthenticated()
}

// Navigate switches to p.
func (s *Shell) Navigate(p Page) error {
	if !s.gate.IsAuthenticated() {
		return session.ErrNotAuthenticated
	}
	s.page = p
	return nil
}

// SignOut signs the gate out and returns to the home page.
func (s *Shell) SignOut(ctx context.Context) error {
	s.page = PageHome
	return s.gate.SignOut(ctx)
}
