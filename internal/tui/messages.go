package tui

import (
	"github.com/MKhiriev/go-shortage-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload
// is delivered to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow. Both the login and the register pages
// produce it, since a successful registration logs the new account in.
type LoginResult struct {
	Account models.Account
	Notice  string
	Err     error
}

type shortageAddedMsg struct {
	outcome models.AddOutcome
	err     error
}

type shortageRemovedMsg struct {
	outcome models.RemoveOutcome
	err     error
}

type listLoadedMsg struct {
	items []models.Shortage
}

type clearStatusMsg struct{}
