// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-creds-manager/internal/adapter"
	"github.com/MKhiriev/go-creds-manager/internal/app"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/internal/views"
	"github.com/MKhiriev/go-creds-manager/models"
)

const (
	statusTTL = 3 * time.Second

	editorHotKeys = "tab: next │ ←/→: subfolder │ ctrl+n: new │ ctrl+a/ctrl+r: add/remove field │ ctrl+s: save\n" +
		"ctrl+t: folder type │ ctrl+w: browse │ ctrl+y: copy │ ctrl+o: sign out"
	browserHotKeys = "↑/↓/←/→: move │ d: delete │ ctrl+t: folder type │ ctrl+w: edit │ ctrl+y: copy │ ctrl+o: sign out"
	loginHotKeys   = "tab: next field │ enter: sign in"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// model is the root of the terminal UI. It shows the sign-in form until
// the gate is authenticated, then the shell with the editor and the
// browser. Snapshot callbacks reach it only through the event bus.
type model struct {
	gate      Gate
	store     store.Store
	bus       *eventBus
	run       runner
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	shell   *views.Shell
	login   *loginModel
	editor  *editorModel
	browser *browserModel
	spinner spinner.Model

	status    string
	statusErr bool
	statusID  int
	statusTTL time.Duration

	showAbout    bool
	showError    bool
	errorOverlay errorOverlayModel
}

func newModel(ctx context.Context, gate Gate, st store.Store, timeout time.Duration, info models.AppBuildInfo, log *logger.Logger) *model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &model{
		gate:      gate,
		store:     st,
		bus:       newEventBus(ctx),
		run:       runner{ctx: ctx, timeout: timeout},
		buildInfo: info,
		logger:    log,
		shell:     views.NewShell(gate),
		spinner:   s,
		statusTTL: statusTTL,
	}
	m.login = newLoginModel(m.signIn)
	return m
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.bus.listen(), textinput.Blink}
	if m.gate.IsAuthenticated() {
		cmds = append(cmds, func() tea.Msg { return openViewsMsg{} })
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case busMsg:
		return m, tea.Batch(m.handle(msg.msg), m.bus.listen())
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.handle(msg)
}

func (m *model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case openViewsMsg:
		if m.gate.IsAuthenticated() {
			return m.openViews()
		}
	case editorSnapshotMsg:
		if m.editor != nil {
			m.editor.apply(msg.event)
		}
	case browserSnapshotMsg:
		if m.browser != nil {
			m.browser.apply(msg.event)
		}
	case streamFailedMsg:
		if errors.Is(msg.err, adapter.ErrUnauthorized) {
			return m.expire()
		}
		return m.setStatus(fmt.Sprintf("Live updates for %s stopped: %s", msg.path, humanizeError(msg.err)), true)
	case signedInMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
			return nil
		}
		m.login.reset()
		return m.openViews()
	case savedMsg:
		if m.editor != nil {
			m.editor.saving = false
		}
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.setStatus(app.MsgDataSaved, false)
	case deletedMsg:
		if m.browser != nil {
			m.browser.deleting = false
		}
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.setStatus(fmt.Sprintf("Deleted %q", msg.name), false)
	case copiedMsg:
		if msg.err != nil {
			return m.setStatus("Copy failed: "+msg.err.Error(), true)
		}
		return m.setStatus("Copied to clipboard", false)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
	default:
		if !m.gate.IsAuthenticated() {
			return m.login.update(msg)
		}
	}
	return nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.quit) {
		m.closeViews()
		return tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay = errorOverlayModel{}
		}
		return nil
	}
	if m.showAbout {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
			m.showAbout = false
		}
		return nil
	}
	if key.Matches(msg, keys.about) {
		m.showAbout = true
		return nil
	}

	if !m.gate.IsAuthenticated() {
		return m.login.update(msg)
	}
	if m.editor == nil {
		switch {
		case key.Matches(msg, keys.enter):
			return m.openViews()
		case key.Matches(msg, keys.signOut):
			m.signOut()
		}
		return nil
	}

	if m.shell.Page() == views.PageView && m.browser.confirming() {
		return m.browser.confirm(msg)
	}

	switch {
	case key.Matches(msg, keys.signOut):
		m.signOut()
		return nil
	case key.Matches(msg, keys.switchPage):
		return m.switchPage()
	case key.Matches(msg, keys.switchFolder):
		return m.switchFolderType()
	case key.Matches(msg, keys.copy):
		return m.copySelection()
	}

	if m.shell.Page() == views.PageHome {
		cmd, err := m.editor.update(msg)
		if err != nil {
			return m.fail(err)
		}
		return cmd
	}
	return m.browser.update(msg)
}

func (m *model) signIn(creds models.Credentials) tea.Cmd {
	gate := m.gate
	return m.run.cmd(
		func(ctx context.Context) error { return gate.SignIn(ctx, creds) },
		func(err error) tea.Msg { return signedInMsg{err: err} },
	)
}

// openViews builds fresh views for the signed-in user and subscribes them.
func (m *model) openViews() tea.Cmd {
	m.closeViews()

	editor := views.NewEditor(m.store, m.bus.editorSink, m.logger)
	browser := views.NewBrowser(m.store, m.bus.browserSink, m.logger)

	err := m.run.do(editor.Open)
	if err == nil {
		err = m.run.do(browser.Open)
	}
	if err != nil {
		editor.Close()
		browser.Close()
		return m.fail(err)
	}

	m.editor = newEditorModel(editor, m.run)
	m.browser = newBrowserModel(browser, m.run)
	return m.spinner.Tick
}

func (m *model) closeViews() {
	if m.editor != nil {
		m.editor.view.Close()
		m.editor = nil
	}
	if m.browser != nil {
		m.browser.view.Close()
		m.browser = nil
	}
}

func (m *model) signOut() {
	m.closeViews()
	if err := m.run.do(m.shell.SignOut); err != nil {
		m.logger.Err(err).Str("func", "*model.signOut").Msg("failed to clear session")
	}
	m.login.reset()
	m.status = ""
	m.showError = false
}

// expire signs out after the server rejected the stored token.
func (m *model) expire() tea.Cmd {
	m.signOut()
	m.login.errMsg = app.MsgSessionExpired
	return nil
}

// fail reports err: validation problems on the status line, everything
// else in the error overlay. A rejected token signs out.
func (m *model) fail(err error) tea.Cmd {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return m.expire()
	}
	if errors.Is(err, views.ErrValidation) || errors.Is(err, models.ErrInvalidSubfolderName) {
		return m.setStatus(humanizeError(err), true)
	}

	m.logger.Err(err).Str("func", "*model.fail").Msg("operation failed")
	m.errorOverlay = errorOverlayModel{message: humanizeError(err)}
	m.showError = true
	return nil
}

func (m *model) switchPage() tea.Cmd {
	next := views.PageView
	if m.shell.Page() == views.PageView {
		next = views.PageHome
	}
	if err := m.shell.Navigate(next); err != nil {
		return m.fail(err)
	}
	return nil
}

func (m *model) switchFolderType() tea.Cmd {
	if m.shell.Page() == views.PageHome {
		if err := m.editor.switchFolderType(); err != nil {
			return m.fail(err)
		}
		return nil
	}

	if err := m.browser.switchFolderType(); err != nil {
		return m.fail(err)
	}
	return m.spinner.Tick
}

func (m *model) copySelection() tea.Cmd {
	var (
		text string
		ok   bool
	)
	if m.shell.Page() == views.PageHome {
		text, ok = m.editor.focusedValue()
	} else {
		text, ok = m.browser.selectedCell()
	}
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

// setStatus shows text on the status line until the next status or until
// statusTTL passes.
func (m *model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusID++
	id := m.statusID
	m.status = text
	m.statusErr = isErr

	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *model) busy() bool {
	if m.login.submitting {
		return true
	}
	if m.editor != nil && m.editor.saving {
		return true
	}
	return m.browser != nil && (m.browser.deleting || m.browser.view.Loading())
}

func (m *model) View() string {
	if m.showAbout {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var title, body, hotKeys string
	spin := m.spinner.View()

	switch {
	case !m.gate.IsAuthenticated():
		title = titleStyle.Render("SIGN IN")
		body = m.login.View(spin)
		hotKeys = loginHotKeys
	case m.editor == nil:
		title = titleStyle.Render("CREDENTIALS")
		body = "The data could not be loaded. Press enter to retry."
		hotKeys = "enter: retry │ ctrl+o: sign out"
	case m.shell.Page() == views.PageHome:
		title = renderNav(views.PageHome, m.gate.Identifier())
		body = m.editor.View(spin)
		hotKeys = editorHotKeys
	default:
		title = renderNav(views.PageView, m.gate.Identifier())
		body = m.browser.View(spin)
		hotKeys = browserHotKeys
	}

	if m.status != "" {
		style := noticeStyle
		if m.statusErr {
			style = errorStyle
		}
		body += "\n\n" + style.Render(m.status)
	}

	out := renderPage(title, body, hotKeys)
	if m.browser != nil && m.shell.Page() == views.PageView && m.browser.confirming() {
		out += "\n\n" + confirmModel{message: m.browser.view.ConfirmMessage()}.View()
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}
	return appStyle.Render(out)
}

func renderNav(page views.Page, identifier string) string {
	home, view := " Edit ", " Browse "
	if page == views.PageHome {
		home = activeTabStyle.Render("[Edit]")
	} else {
		view = activeTabStyle.Render("[Browse]")
	}
	nav := titleStyle.Render("CREDENTIALS") + "  " + home + " " + view
	if identifier != "" {
		nav += helpStyle.Render("   signed in as " + identifier)
	}
	return nav
}
