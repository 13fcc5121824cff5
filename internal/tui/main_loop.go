package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shortage-keeper/internal/app"
	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/internal/service"
	"github.com/MKhiriev/go-shortage-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenAdd
	screenList
	screenRemove
	screenFilter
)

const statusTTL = 3 * time.Second

type menuItem struct {
	key   string
	label string
	open  screen
}

var mainMenuItems = []menuItem{
	{key: "1", label: "Add a shortage", open: screenAdd},
	{key: "2", label: "List all shortages", open: screenList},
	{key: "3", label: "Remove a shortage", open: screenRemove},
	{key: "4", label: "List filtered shortages", open: screenFilter},
}

type mainLoopModel struct {
	ctx       context.Context
	shortages service.ShortageService
	account   models.Account

	screen  screen
	menuIdx int

	add    shortageForm
	remove removeForm
	filter filterForm
	list   listModel

	spinner spinner.Model
	busy    bool

	status  string
	errMsg  string
	overlay *errorOverlayModel

	logout bool
}

func newMainLoopModel(ctx context.Context, shortages service.ShortageService, account models.Account) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:       ctx,
		shortages: shortages,
		account:   account,
		add:       newShortageForm(),
		remove:    newRemoveForm(),
		filter:    newFilterForm(),
		spinner:   s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	if m.status == "" {
		return nil
	}
	return clearStatusAfter(statusTTL)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case shortageAddedMsg:
		return m.handleAdded(msg)

	case shortageRemovedMsg:
		return m.handleRemoved(msg)

	case listLoadedMsg:
		m.busy = false
		m.list.setItems(msg.items)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.overlay != nil {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.overlay = nil
			}
			return m, nil
		}
		if m.busy {
			return m, nil
		}
	}

	switch m.screen {
	case screenAdd:
		return m.updateAdd(msg)
	case screenRemove:
		return m.updateRemove(msg)
	case screenFilter:
		return m.updateFilter(msg)
	case screenList:
		return m.updateList(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m mainLoopModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < len(mainMenuItems) {
			m.menuIdx++
		}
	case key.Matches(keyMsg, keys.add):
		return m.open(screenAdd)
	case key.Matches(keyMsg, keys.list):
		return m.open(screenList)
	case key.Matches(keyMsg, keys.remove):
		return m.open(screenRemove)
	case key.Matches(keyMsg, keys.filter):
		return m.open(screenFilter)
	case key.Matches(keyMsg, keys.exit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		// the row after the numbered items is "Exit"
		if m.menuIdx == len(mainMenuItems) {
			return m, tea.Quit
		}
		return m.open(mainMenuItems[m.menuIdx].open)
	}

	return m, nil
}

// open switches to s. Opening the full list loads it right away.
func (m mainLoopModel) open(s screen) (tea.Model, tea.Cmd) {
	m.screen = s
	m.errMsg = ""

	switch s {
	case screenAdd:
		m.add.reset()
		return m, textinput.Blink
	case screenRemove:
		m.remove.reset()
		return m, textinput.Blink
	case screenFilter:
		m.filter.reset()
		return m, textinput.Blink
	case screenList:
		m.list = newListModel("ALL SHORTAGES", nil)
		return m.load()
	}

	return m, nil
}

func (m mainLoopModel) backToMenu() mainLoopModel {
	m.screen = screenMenu
	m.errMsg = ""
	return m
}

func (m mainLoopModel) handleAdded(msg shortageAddedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.showError(msg.err)
		return m, nil
	}

	m = m.backToMenu()
	m.status = msg.outcome.String()
	return m, clearStatusAfter(statusTTL)
}

func (m mainLoopModel) handleRemoved(msg shortageRemovedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.showError(msg.err)
		return m, nil
	}

	m.status = msg.outcome.String()
	if m.screen == screenList {
		m.list.confirm = nil
		model, cmd := m.load()
		return model, tea.Batch(cmd, clearStatusAfter(statusTTL))
	}

	m = m.backToMenu()
	return m, clearStatusAfter(statusTTL)
}

// showError puts a failure in front of the user. Validation problems stay
// inline next to the form; anything else opens the error overlay.
func (m *mainLoopModel) showError(err error) {
	text := app.ErrorMessage(err)
	if text == app.MsgInternalError {
		logger.FromContext(m.ctx).Err(err).Str("func", "mainLoopModel.showError").Msg("operation failed")
		m.overlay = &errorOverlayModel{message: text}
		return
	}
	m.errMsg = text
}

func (m mainLoopModel) cmdAdd(shortage models.Shortage) tea.Cmd {
	ctx := m.ctx
	shortages := m.shortages

	return func() tea.Msg {
		outcome, err := shortages.Add(ctx, shortage)
		return shortageAddedMsg{outcome: outcome, err: err}
	}
}

func (m mainLoopModel) cmdRemove(title string, room models.Room) tea.Cmd {
	ctx := m.ctx
	shortages := m.shortages
	actor := m.account

	return func() tea.Msg {
		outcome, err := shortages.Remove(ctx, title, room, actor)
		return shortageRemovedMsg{outcome: outcome, err: err}
	}
}

func (m mainLoopModel) cmdList(filter *models.ShortageFilter) tea.Cmd {
	ctx := m.ctx
	shortages := m.shortages
	actor := m.account

	return func() tea.Msg {
		if filter == nil {
			return listLoadedMsg{items: shortages.List(ctx, actor)}
		}
		return listLoadedMsg{items: shortages.ListFiltered(ctx, actor, *filter)}
	}
}

// load refreshes the list screen with its current filter.
func (m mainLoopModel) load() (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(m.spinner.Tick, m.cmdList(m.list.filter))
}

func (m mainLoopModel) submit(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	switch m.screen {
	case screenAdd:
		return m.viewAdd()
	case screenRemove:
		return m.viewRemove()
	case screenFilter:
		return m.viewFilter()
	case screenList:
		return m.viewList()
	}

	return m.viewMenu()
}

func (m mainLoopModel) viewMenu() string {
	var b strings.Builder

	role := "user"
	if m.account.IsAdmin {
		role = "administrator"
	}
	b.WriteString(fmt.Sprintf("Logged in as %s (%s)\n\n", m.account.Name, role))

	b.WriteString("ID    │ Action\n")
	b.WriteString("──────┼──────────────────────────────\n")
	for i, item := range mainMenuItems {
		b.WriteString(menuRow(i == m.menuIdx, item.key, item.label))
	}
	b.WriteString(menuRow(m.menuIdx == len(mainMenuItems), "0", "Exit"))
	b.WriteString(renderMessages(m.status, m.errMsg))

	return renderPage(
		"SHORTAGE MANAGEMENT MENU",
		strings.TrimRight(b.String(), "\n"),
		"1-4: open │ 0: exit │ enter: select │ ↑/↓: navigate │ l: log out",
	)
}

func (m mainLoopModel) busyLine(label string) string {
	if m.busy {
		return "\n" + m.spinner.View() + " " + label + "...\n"
	}
	return "\n[" + label + "]\n"
}

func menuRow(selected bool, id, label string) string {
	cursor := " "
	if selected {
		cursor = ">"
	}
	return fmt.Sprintf("%s %-3s │ %s\n", cursor, id, label)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
