package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shortage-keeper/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModel is the start page of the login flow.
type MenuModel struct {
	items []string
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Log in", "Register"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case keyMsg.String() == "l":
		return m, navigate(pageLogin)
	case keyMsg.String() == "r":
		return m, navigate(pageRegister)
	case key.Matches(keyMsg, keys.enter):
		if m.idx == 0 {
			return m, navigate(pageLogin)
		}
		return m, navigate(pageRegister)
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(app.MsgWelcome)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ l: log in │ r: register │ ↑/↓: navigate │ v: version")
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
