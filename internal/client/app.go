package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkhalitov/taskvault/internal/config"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/internal/service"
	"github.com/mkhalitov/taskvault/internal/store"
	"github.com/mkhalitov/taskvault/internal/tui"
	"github.com/mkhalitov/taskvault/internal/workers"
)

// App ties the terminal UI, the task services and the background workers
// into one session loop: sign in, work, log out, repeat.
type App struct {
	services *service.Services
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		workers:  workers.NewClientWorkers(cfg, services.Refresh),
		logger:   log,
	}, nil
}

// Run blocks until the user quits. A stored session is restored silently;
// otherwise the login flow runs first. Logging out returns to the login
// flow instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		_, err := a.services.Auth.RestoreSession(ctx)
		if err != nil {
			if !errors.Is(err, store.ErrSessionNotFound) && !errors.Is(err, service.ErrSessionExpired) && !errors.Is(err, service.ErrSessionInvalid) {
				return fmt.Errorf("restore session: %w", err)
			}

			if _, err = a.tui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		// Best effort: the cache still serves reads when the backend is down.
		if err = a.services.Tasks.Refresh(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial cache refresh failed, serving cached data")
		}

		workerCtx, cancelWorkers := context.WithCancel(ctx)
		a.workers.Run(workerCtx)

		logout, err := a.tui.MainLoop(ctx)

		a.workers.Stop()
		cancelWorkers()

		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.Auth.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout cleanup failed")
		}
	}
}
