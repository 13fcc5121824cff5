package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-shortage-keeper/internal/app"
	"github.com/MKhiriev/go-shortage-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a column of text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(labels, placeholders []string) form {
	inputs := make([]textinput.Model, len(labels))
	for i := range labels {
		inputs[i] = newInput(placeholders[i], 128)
	}
	inputs[0].Focus()
	return form{labels: labels, inputs: inputs}
}

func (f *form) reset() {
	resetInputs(f.inputs)
	f.focus = 0
}

func (f *form) next() {
	f.focus = focusInput(f.inputs, f.focus, (f.focus+1)%len(f.inputs))
}

func (f *form) prev() {
	f.focus = focusInput(f.inputs, f.focus, (f.focus-1+len(f.inputs))%len(f.inputs))
}

func (f *form) values() []string {
	return inputValues(f.inputs)
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	return renderForm(f.labels, f.inputs)
}

// formAction is what a key press on a form asks the main loop to do.
type formAction int

const (
	formNone formAction = iota
	formCancel
	formSubmit
)

// handleKey applies navigation keys to f and reports esc and enter to the
// caller. Any other message is forwarded to the focused input.
func (f *form) handleKey(msg tea.Msg) (formAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return formCancel, nil
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			f.next()
			return formNone, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			f.prev()
			return formNone, nil
		case key.Matches(keyMsg, keys.enter):
			// enter moves through the fields and submits from the last one
			if f.focus < len(f.inputs)-1 {
				f.next()
				return formNone, nil
			}
			return formSubmit, nil
		}
	}
	return formNone, f.update(msg)
}

type shortageForm struct{ form }

func newShortageForm() shortageForm {
	return shortageForm{newForm(
		[]string{"Title", "Room", "Category", "Priority"},
		[]string{"title", roomHint(), categoryHint(), "1-10"},
	)}
}

type removeForm struct{ form }

func newRemoveForm() removeForm {
	return removeForm{newForm(
		[]string{"Title", "Room"},
		[]string{"title", roomHint()},
	)}
}

type filterForm struct{ form }

func newFilterForm() filterForm {
	return filterForm{newForm(
		[]string{"Title", "Created from", "Created to", "Room", "Category"},
		[]string{"press Enter to skip", "YYYY-MM-DD", "YYYY-MM-DD", roomHint(), categoryHint()},
	)}
}

func (m mainLoopModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.add.handleKey(msg)
	switch action {
	case formCancel:
		return m.backToMenu(), nil
	case formSubmit:
		v := m.add.values()
		shortage, err := buildShortage(v[0], m.account.Name, v[1], v[2], v[3], models.Today())
		if err != nil {
			m.errMsg = app.ErrorMessage(err)
			return m, nil
		}
		return m.submit(m.cmdAdd(shortage))
	}
	return m, cmd
}

func (m mainLoopModel) updateRemove(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.remove.handleKey(msg)
	switch action {
	case formCancel:
		return m.backToMenu(), nil
	case formSubmit:
		v := m.remove.values()
		return m.submit(m.cmdRemove(v[0], models.Room(v[1])))
	}
	return m, cmd
}

func (m mainLoopModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.filter.handleKey(msg)
	switch action {
	case formCancel:
		return m.backToMenu(), nil
	case formSubmit:
		// the title is matched as a raw substring, so it skips the trimming values applies
		v := m.filter.values()
		filter := buildFilter(m.filter.inputs[0].Value(), v[1], v[2], v[3], v[4])
		m.screen = screenList
		m.errMsg = ""
		if filter.IsEmpty() {
			m.list = newListModel("ALL SHORTAGES", nil)
		} else {
			m.list = newListModel("FILTERED SHORTAGES", &filter)
		}
		return m.load()
	}
	return m, cmd
}

func (m mainLoopModel) viewAdd() string {
	out := m.add.view() + m.busyLine("Add") + renderMessages("", m.errMsg)
	return renderPage("ADD A SHORTAGE", strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: next / save")
}

func (m mainLoopModel) viewRemove() string {
	out := m.remove.view() + m.busyLine("Remove") + renderMessages("", m.errMsg)
	return renderPage("REMOVE A SHORTAGE", strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: next / remove")
}

func (m mainLoopModel) viewFilter() string {
	out := m.filter.view() + "\nLeave a field empty to skip it.\n" + renderMessages("", m.errMsg)
	return renderPage("FILTER SHORTAGES", strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: next / search")
}

// buildShortage turns raw form input into a validated shortage. A priority
// that is not an integer yields [app.ErrInvalidPriority].
func buildShortage(title, reporter, room, category, priority string, createdOn models.Date) (models.Shortage, error) {
	p, err := parsePriority(priority)
	if err != nil {
		return models.Shortage{}, err
	}
	return models.NewShortage(title, reporter, models.Room(room), models.Category(category), p, createdOn)
}

func parsePriority(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", app.ErrInvalidPriority, s)
	}
	return p, nil
}

// buildFilter maps the filter form to a [models.ShortageFilter]. Empty
// fields are skipped, and so are dates that do not parse.
func buildFilter(title, from, to, room, category string) models.ShortageFilter {
	var f models.ShortageFilter

	if strings.TrimSpace(title) != "" {
		f.Title = &title
	}
	if d, ok := optionalDate(from); ok {
		f.CreatedFrom = &d
	}
	if d, ok := optionalDate(to); ok {
		f.CreatedTo = &d
	}
	if room = strings.TrimSpace(room); room != "" {
		r := models.Room(room)
		f.Room = &r
	}
	if category = strings.TrimSpace(category); category != "" {
		c := models.Category(category)
		f.Category = &c
	}

	return f
}

func optionalDate(s string) (models.Date, bool) {
	if strings.TrimSpace(s) == "" {
		return models.Date{}, false
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, false
	}
	return d, true
}

func roomHint() string {
	names := make([]string, 0, len(models.Rooms))
	for _, r := range models.Rooms {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

func categoryHint() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
