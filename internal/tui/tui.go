package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/internal/service"
	"github.com/MKhiriev/go-shortage-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user leaves the login flow with ctrl+c.
var ErrUserQuit = errors.New("user quit the application")

// TUI runs the interactive screens on top of the core services.
type TUI struct {
	services *service.Services
	logger   *logger.Logger

	// notice is the login-flow message shown when the main loop opens.
	notice string
}

func New(services *service.Services, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, logger: log}, nil
}

// LoginFlow blocks until the user logs in or registers, and returns the
// authenticated account.
func (t *TUI) LoginFlow(ctx context.Context) (models.Account, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AccountService),
		pageRegister: NewRegisterModel(ctx, t.services.AccountService),
	}

	root := NewRootModel(pages, pageMenu, t.services.AppInfoService.GetBuildInfo(ctx))
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.Account{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Account{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Account{}, ErrUserQuit
	}

	t.notice = result.notice
	t.logger.Debug().Str("func", "TUI.LoginFlow").Str("account", result.account.Name).Msg("login flow finished")
	return result.account, nil
}

// MainLoop runs the shortage menu for account. logout is true when the user
// asked to switch accounts rather than exit.
func (t *TUI) MainLoop(ctx context.Context, account models.Account) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services.ShortageService, account)
	model.status = t.notice
	t.notice = ""

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
