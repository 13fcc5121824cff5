package tui

import (
	"github.com/MKhiriev/go-shortage-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Pages of the login flow.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel routes the login flow between its pages. It owns the global
// keys (ctrl+c, and v for the version window on the menu), switches pages
// on [NavigateTo], and quits once a [LoginResult] carries an account.
// Everything else goes to the active page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	account    models.Account
	notice     string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case LoginResult:
		// failures stay on the page that submitted the form
		if msg.Err == nil {
			r.account = msg.Account
			r.notice = msg.Notice
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// handleGlobalKey applies keys owned by the router. While the version
// window is open it swallows every key.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return true, tea.Quit
	case key.Matches(msg, keys.version) && r.isMenuPage():
		r.showBuildInfo = !r.showBuildInfo
		return true, nil
	case key.Matches(msg, keys.esc) && r.showBuildInfo:
		r.showBuildInfo = false
		return true, nil
	}

	return r.showBuildInfo, nil
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("SHORTAGES", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
