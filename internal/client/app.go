package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/internal/tui"
	"github.com/MKhiriev/go-shortage-keeper/internal/utils"
)

type App struct {
	ui       UI
	sessions *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewApp(ui UI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}
	return &App{ui: ui, sessions: utils.NewUUIDGenerator(), logger: log}, nil
}

// Run loops over login sessions. It returns nil when the user exits, either
// from the login flow or from the main loop.
func (a *App) Run(ctx context.Context) error {
	for {
		account, err := a.ui.LoginFlow(a.logger.WithContext(ctx))
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Str("func", "App.Run").Msg("user quit from login flow")
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		sessionLog := a.logger.WithSession(a.sessions.Generate(), account.Name)
		sessionLog.Info().Bool("admin", account.IsAdmin).Msg("session started")

		logout, err := a.ui.MainLoop(sessionLog.WithContext(ctx), account)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			sessionLog.Info().Msg("session finished, exiting")
			return nil
		}

		sessionLog.Info().Msg("logged out")
	}
}
