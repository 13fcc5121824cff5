package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shortage-keeper/internal/app"
	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type listModel struct {
	title   string
	filter  *models.ShortageFilter
	items   []models.Shortage
	idx     int
	confirm *confirmModel
}

func newListModel(title string, filter *models.ShortageFilter) listModel {
	return listModel{title: title, filter: filter}
}

func (l *listModel) setItems(items []models.Shortage) {
	l.items = items
	if l.idx >= len(items) {
		l.idx = len(items) - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l listModel) current() (models.Shortage, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		return models.Shortage{}, false
	}
	return l.items[l.idx], true
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			item, ok := m.list.current()
			m.list.confirm = nil
			if !ok {
				return m, nil
			}
			return m.submit(m.cmdRemove(item.Title, item.Room))
		case key.Matches(keyMsg, keys.no):
			m.list.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.backToMenu(), nil
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.reload):
		return m.load()
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.list.current()
		if !ok {
			m.status = app.MsgNoShortagesFound
			return m, nil
		}
		m.list.confirm = &confirmModel{message: item.Title + " / " + string(item.Room)}
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.list.current()
		if !ok {
			m.status = app.MsgNoShortagesFound
			return m, nil
		}
		if err := clipboard.WriteAll(shortageSummary(item)); err != nil {
			logger.FromContext(m.ctx).Warn().Err(err).Str("func", "mainLoopModel.updateList").Msg("clipboard write failed")
			m.errMsg = app.MsgClipboardUnavailable
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgCopiedToClipboard
		return m, clearStatusAfter(statusTTL)
	}

	return m, nil
}

func (m mainLoopModel) viewList() string {
	hotKeys := "esc: back │ ↑/↓: navigate │ c: copy │ d: delete │ r: reload"

	if m.list.confirm != nil {
		return renderPage(m.list.title, m.list.confirm.View(), "y: yes │ n: no")
	}
	if m.busy {
		return renderPage(m.list.title, m.spinner.View()+" Loading...", hotKeys)
	}

	var b strings.Builder
	if len(m.list.items) == 0 {
		b.WriteString(app.MsgNoShortagesFound)
		b.WriteString("\n")
	} else {
		b.WriteString(shortageTable(m.list.items, m.list.idx))
	}
	b.WriteString(renderMessages(m.status, m.errMsg))

	return renderPage(m.list.title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func shortageTable(items []models.Shortage, selected int) string {
	var b strings.Builder
	b.WriteString("  #   │ Title                │ Room          │ Category     │ Pri │ Created    │ Reporter\n")
	b.WriteString("──────┼──────────────────────┼───────────────┼──────────────┼─────┼────────────┼──────────────\n")
	for i, s := range items {
		cursor := " "
		if i == selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-4d│ %-20s │ %-13s │ %-12s │ %3d │ %-10s │ %s\n",
			cursor,
			i+1,
			fitText(s.Title, 20),
			fitText(string(s.Room), 13),
			fitText(string(s.Category), 12),
			s.Priority,
			s.CreatedOn.String(),
			valueOrDash(s.ReporterName),
		))
	}
	return b.String()
}

// shortageSummary is the single-line text copied to the clipboard.
func shortageSummary(s models.Shortage) string {
	return fmt.Sprintf(
		"%s | room: %s | category: %s | priority: %d | created: %s | reported by: %s",
		s.Title, s.Room, s.Category, s.Priority, s.CreatedOn, s.ReporterName,
	)
}
