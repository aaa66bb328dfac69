// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-creds-manager/internal/views"
	"github.com/MKhiriev/go-creds-manager/models"
)

// editorModel draws a [views.Editor]. Focus 0 is the subfolder selector;
// focus i > 0 is row input i-1, keys and values alternating.
type editorModel struct {
	view *views.Editor
	run  runner

	inputs  []textinput.Model
	newName textinput.Model
	focus   int
	saving  bool
}

func newEditorModel(view *views.Editor, run runner) *editorModel {
	newName := textinput.New()
	newName.Placeholder = "subfolder name"
	newName.CharLimit = 128
	newName.Width = 30

	m := &editorModel{view: view, run: run, newName: newName}
	m.sync()
	return m
}

func newFieldInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 1024
	in.Width = 24
	in.SetValue(value)
	return in
}

// sync rebuilds the row inputs when the view's rows differ from them.
func (m *editorModel) sync() {
	pairs := m.view.Pairs()
	if slices.Equal(pairs, m.inputPairs()) {
		return
	}

	inputs := make([]textinput.Model, 0, 2*len(pairs))
	for _, p := range pairs {
		inputs = append(inputs, newFieldInput("key", p.Key), newFieldInput("value", p.Value))
	}
	m.inputs = inputs
	m.setFocus(m.focus)
}

func (m *editorModel) inputPairs() []models.Pair {
	pairs := make([]models.Pair, 0, len(m.inputs)/2)
	for i := 0; i+1 < len(m.inputs); i += 2 {
		pairs = append(pairs, models.Pair{Key: m.inputs[i].Value(), Value: m.inputs[i+1].Value()})
	}
	return pairs
}

func (m *editorModel) apply(ev views.SnapshotEvent) {
	if m.view.Apply(ev) {
		m.sync()
		m.setFocus(m.focus)
	}
}

// focusable counts the focus stops: the selector plus, once a subfolder is
// selected, every row input.
func (m *editorModel) focusable() int {
	if m.view.Selected() == "" {
		return 1
	}
	return 1 + len(m.inputs)
}

func (m *editorModel) setFocus(i int) {
	n := m.focusable()
	i = ((i % n) + n) % n

	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	if i > 0 {
		m.inputs[i-1].Focus()
	}
}

func (m *editorModel) row() int {
	return (m.focus - 1) / 2
}

func (m *editorModel) switchFolderType() error {
	next := m.view.FolderType().Next()
	err := m.run.do(func(ctx context.Context) error {
		return m.view.SwitchFolderType(ctx, next)
	})
	m.newName.Reset()
	m.newName.Blur()
	m.sync()
	m.setFocus(0)
	return err
}

func (m *editorModel) update(msg tea.KeyMsg) (tea.Cmd, error) {
	if m.view.Creating() {
		return m.updateCreate(msg)
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus(m.focus + 1)
	case key.Matches(msg, keys.backtab):
		m.setFocus(m.focus - 1)
	case key.Matches(msg, keys.newSubfolder):
		m.view.StartCreate()
		m.newName.Reset()
		m.newName.Focus()
		m.setFocus(0)
	case key.Matches(msg, keys.addField):
		m.view.AddField()
		m.sync()
		if m.view.Selected() != "" {
			m.setFocus(len(m.inputs) - 1)
		}
	case key.Matches(msg, keys.removeField):
		if m.focus > 0 {
			m.view.RemoveField(m.row())
			m.sync()
		}
	case key.Matches(msg, keys.save):
		return m.save()
	case m.focus == 0 && key.Matches(msg, keys.left):
		return nil, m.cycle(-1)
	case m.focus == 0 && key.Matches(msg, keys.right):
		return nil, m.cycle(1)
	case m.focus > 0:
		return m.edit(msg), nil
	}
	return nil, nil
}

func (m *editorModel) updateCreate(msg tea.KeyMsg) (tea.Cmd, error) {
	switch {
	case key.Matches(msg, keys.esc):
		m.view.CancelCreate()
		m.newName.Reset()
		m.newName.Blur()
		return nil, nil
	case key.Matches(msg, keys.enter):
		err := m.run.do(func(ctx context.Context) error {
			return m.view.CreateSubfolder(ctx, m.newName.Value())
		})
		if !m.view.Creating() {
			m.newName.Reset()
			m.newName.Blur()
			m.sync()
			m.setFocus(1)
		}
		return nil, err
	}

	var cmd tea.Cmd
	m.newName, cmd = m.newName.Update(msg)
	m.view.SetNewName(m.newName.Value())
	return cmd, nil
}

// edit forwards msg to the focused row input and mirrors the result into
// the view.
func (m *editorModel) edit(msg tea.KeyMsg) tea.Cmd {
	i := m.focus - 1
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	if i%2 == 0 {
		m.view.EditKey(i/2, m.inputs[i].Value())
	} else {
		m.view.EditValue(i/2, m.inputs[i].Value())
	}
	return cmd
}

// cycle selects the subfolder delta steps away from the current one.
func (m *editorModel) cycle(delta int) error {
	names := m.view.Subfolders()
	if len(names) == 0 {
		return nil
	}

	i := slices.Index(names, m.view.Selected())
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = len(names) - 1
	default:
		i = (i + delta + len(names)) % len(names)
	}

	return m.run.do(func(ctx context.Context) error {
		return m.view.SelectSubfolder(ctx, names[i])
	})
}

func (m *editorModel) save() (tea.Cmd, error) {
	if m.saving {
		return nil, nil
	}

	write, err := m.view.PrepareSave()
	if err != nil {
		return nil, err
	}

	m.saving = true
	return m.run.cmd(write, func(err error) tea.Msg { return savedMsg{err: err} }), nil
}

// focusedValue returns the text of the focused row input.
func (m *editorModel) focusedValue() (string, bool) {
	if m.focus == 0 || m.focus > len(m.inputs) {
		return "", false
	}
	return m.inputs[m.focus-1].Value(), true
}

func (m *editorModel) View(spin string) string {
	var b strings.Builder
	b.WriteString(renderFolderTypes(m.view.FolderType()))
	b.WriteString("\n\n")

	if m.view.Creating() {
		b.WriteString("New subfolder [")
		b.WriteString(m.newName.View())
		b.WriteString("]\n")
		b.WriteString(helpStyle.Render("enter: create │ esc: cancel"))
		b.WriteString("\n")
	} else {
		selector := m.selectorText()
		if m.focus == 0 {
			selector = selectedStyle.Render(selector)
		}
		b.WriteString("Subfolder    ")
		b.WriteString(selector)
		b.WriteString("\n")
	}

	if m.view.Selected() == "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Choose a subfolder with ←/→ or create one with ctrl+n."))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.view.Title()))
	b.WriteString("\n\n")
	b.WriteString("  Key                          Value\n")
	for i := 0; i+1 < len(m.inputs); i += 2 {
		cursor := "  "
		if m.focus > 0 && m.row() == i/2 {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString("[")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]  [")
		b.WriteString(m.inputs[i+1].View())
		b.WriteString("]\n")
	}

	if m.saving {
		b.WriteString("\n" + spin + " Saving...")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *editorModel) selectorText() string {
	selected := m.view.Selected()
	names := m.view.Subfolders()

	switch {
	case selected == "" && len(names) == 0:
		return "(no subfolders yet)"
	case selected == "":
		return "‹ select ›"
	case !slices.Contains(names, selected):
		return "‹ " + selected + " (new) ›"
	default:
		return "‹ " + selected + " ›"
	}
}
