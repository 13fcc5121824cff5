// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-shortage-keeper/internal/app"
	"github.com/MKhiriev/go-shortage-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (name and password) and dispatches an async authentication command on form submission.
// On success a [LoginResult] message is produced and handled by [RootModel] to finish
// the login flow.
type LoginModel struct {
	ctx      context.Context
	accounts service.AccountService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured name and password inputs.
// The name field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, accounts service.AccountService) *LoginModel {
	nameInput := newInput("name", 64)
	nameInput.Focus()

	passwordInput := newInput("password", 256)
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:      ctx,
		accounts: accounts,
		inputs:   []textinput.Model{nameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; on error, populates errMsg.
//   - esc            cancels and navigates back to the menu.
//   - tab            moves focus to the next input.
//   - shift+tab      moves focus to the previous input.
//   - enter          validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = app.ErrorMessage(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			resetInputs(m.inputs)
			m.focus = 0
			return m, navigate(pageMenu)
		case key.Matches(keyMsg, keys.tab):
			m.focus = focusInput(m.inputs, m.focus, (m.focus+1)%len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = focusInput(m.inputs, m.focus, (m.focus-1+len(m.inputs))%len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if name == "" || pass == "" {
				m.errMsg = "Name and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(name, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form as a two-column table with
// name and password inputs, a submission indicator, and an optional error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(renderForm([]string{"Name", "Password"}, m.inputs))

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	b.WriteString(renderMessages("", m.errMsg))

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: confirm")
}

func (m *LoginModel) cmdLogin(name, pass string) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		account, err := accounts.Authenticate(ctx, name, pass)
		return LoginResult{
			Account: account,
			Notice:  app.MsgLoginSuccessful,
			Err:     err,
		}
	}
}
