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

// RegisterModel is the Bubble Tea model for the registration screen. A
// successful registration logs the new account in.
type RegisterModel struct {
	ctx      context.Context
	accounts service.AccountService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with name, password and
// administrator inputs. The administrator field accepts "y"; anything else
// registers a regular account.
func NewRegisterModel(ctx context.Context, accounts service.AccountService) *RegisterModel {
	nameInput := newInput("name", 64)
	nameInput.Focus()

	passwordInput := newInput("password", 256)
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	adminInput := newInput("y - administrator, empty - regular user", 3)

	return &RegisterModel{
		ctx:      ctx,
		accounts: accounts,
		inputs:   []textinput.Model{nameInput, passwordInput, adminInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; on error, populates errMsg.
//   - esc            cancels and navigates back to the menu.
//   - tab            moves focus to the next input.
//   - shift+tab      moves focus to the previous input.
//   - enter          dispatches the async registration command.
//
// Blank names and passwords are rejected by the account service, so the
// form does not check them itself.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(
				strings.TrimSpace(m.inputs[0].Value()),
				m.inputs[1].Value(),
				isAdminAnswer(m.inputs[2].Value()),
			)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(renderForm([]string{"Name", "Password", "Administrator"}, m.inputs))

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	b.WriteString(renderMessages("", m.errMsg))

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: confirm")
}

func (m *RegisterModel) cmdRegister(name, pass string, isAdmin bool) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		account, err := accounts.Register(ctx, name, pass, isAdmin)
		return LoginResult{
			Account: account,
			Notice:  app.MsgRegistrationSuccessful,
			Err:     err,
		}
	}
}

// isAdminAnswer reports whether the administrator prompt was answered with "y".
func isAdminAnswer(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "y")
}
