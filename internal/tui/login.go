// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-creds-manager/models"
)

// loginModel is the sign-in form: identifier and password. Submitting runs
// signIn off the update loop; the result arrives as a [signedInMsg].
type loginModel struct {
	signIn func(models.Credentials) tea.Cmd

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel(signIn func(models.Credentials) tea.Cmd) *loginModel {
	identifierInput := textinput.New()
	identifierInput.Placeholder = "identifier"
	identifierInput.CharLimit = 256
	identifierInput.Width = 40
	identifierInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &loginModel{
		signIn: signIn,
		inputs: []textinput.Model{identifierInput, passwordInput},
	}
}

// reset clears the form for the next sign-in.
func (m *loginModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.errMsg = ""
}

func (m *loginModel) update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.focusNext()
			return nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.focusPrev()
			return nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return nil
			}
			if m.focus == 0 {
				m.focusNext()
				return nil
			}

			creds := models.Credentials{
				Identifier: strings.TrimSpace(m.inputs[0].Value()),
				Password:   m.inputs[1].Value(),
			}
			m.errMsg = ""
			m.submitting = true
			return m.signIn(creds)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *loginModel) View(spin string) string {
	var b strings.Builder
	b.WriteString("Identifier │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n" + spin + " Signing in...\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
