package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/workers"
)

var errNoUI = errors.New("no ui provided")

type App struct {
	ui      UI
	workers *workers.Workers

	logger *logger.Logger
}

func NewApp(ui UI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}

	return &App{ui: ui, workers: workers, logger: logger}, nil
}

// Run starts the background workers, blocks in the UI and stops the
// workers once the UI returns.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("client started")
	err := a.ui.Run()
	a.logger.Info().Err(err).Msg("client stopped")

	return err
}
