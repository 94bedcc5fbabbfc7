// Package tui is the terminal front end of the card validator client. It
// renders a single card form on top of the validation controller.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/controller"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilController = errors.New("controller is nil")

type TUI struct {
	program *tea.Program
	ctrl    *controller.Controller

	changed chan struct{}

	logger *logger.Logger
}

// New prepares the program without starting it. ctx bounds both the
// program and the validation requests it issues.
func New(ctx context.Context, ctrl *controller.Controller, cfg config.Client, build models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if ctrl == nil {
		return nil, ErrNilController
	}

	limit := cfg.InputLimit
	if limit <= 0 {
		limit = config.DefaultInputLimit
	}

	changed := make(chan struct{}, 1)
	m := newModel(ctx, ctrl, changed, limit, build, logger)

	return &TUI{
		program: tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()),
		ctrl:    ctrl,
		changed: changed,
		logger:  logger,
	}, nil
}

// Run shows the form and blocks until the user quits.
func (t *TUI) Run() error {
	unsubscribe := t.ctrl.Subscribe(func(controller.State) {
		select {
		case t.changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	if _, err := t.program.Run(); err != nil {
		t.logger.Err(err).Msg("terminal ui stopped")
		return err
	}
	return nil
}

// ReportStatus delivers a validator health result to the form. It is safe
// to call from any goroutine and returns once the program has received the
// status or has exited.
func (t *TUI) ReportStatus(status models.ServiceStatus) {
	t.program.Send(serviceStatusMsg{status: status})
}
