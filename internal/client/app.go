package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/shield-chat/internal/logger"
	"github.com/MKhiriev/shield-chat/internal/service"
	"github.com/MKhiriev/shield-chat/internal/tui"
)

// App ties the chat services and the terminal UI into one runnable client.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run starts the UI and blocks until the user quits. The active room watch,
// if any, is stopped on the way out.
func (a *App) Run() error {
	ctx := context.Background()
	defer a.services.ChatSession.Close()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
