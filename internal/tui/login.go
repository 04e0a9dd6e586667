// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/internal/validators"
	"github.com/MKhiriev/recook-book/models"
)

// LoginModel renders the email and password inputs and submits them as a
// SubmitLogin event. A successful login waits the redirect delay and
// continues to the page the login result names.
type LoginModel struct {
	ctx context.Context
	app *client.App

	inputs     []formInput
	focus      int
	submitting bool
	errs       map[string]string
}

func NewLoginModel(ctx context.Context, app *client.App) *LoginModel {
	return &LoginModel{
		ctx: ctx,
		app: app,
		inputs: []formInput{
			newInputField("you@example.com", 254),
			newPasswordField("password"),
		},
	}
}

// Init clears the form and focuses the email input.
func (m *LoginModel) Init() tea.Cmd {
	for _, in := range m.inputs {
		in.Reset()
		in.Blur()
	}
	m.focus = 0
	m.submitting = false
	m.errs = nil
	return m.inputs[0].Focus()
}

// Update handles:
//   - loginDoneMsg: clears the submitting state and redirects on success.
//   - esc: back to the splash page.
//   - tab / shift+tab: moves focus.
//   - enter: submits the form.
//
// All other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errs = fieldErrors(done.err)
			return m, nil
		}
		m.errs = nil
		return m, redirectCmd(m.ctx, m.app, done.result.Destination)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(models.PageSplash)
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdLogin(m.form())
		}
	}

	return m, m.inputs[m.focus].update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Welcome back. Demo account: demo@recookbook.com / Demo123!\n\n")
	formRow(&b, "Email", 8, "["+m.inputs[0].View()+"]", m.errs[validators.FieldEmail])
	formRow(&b, "Password", 8, "["+m.inputs[1].View()+"]", m.errs[validators.FieldPassword])

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: log in")
}

func (m *LoginModel) form() models.LoginForm {
	return models.LoginForm{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m *LoginModel) cmdLogin(form models.LoginForm) tea.Cmd {
	ctx, app := m.ctx, m.app

	return func() tea.Msg {
		res, err := app.SubmitLogin(ctx, form)
		return loginDoneMsg{result: res, err: err}
	}
}

func (m *LoginModel) moveFocus(step int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}
