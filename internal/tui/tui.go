package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("tui: services are not provided")

// TUI runs the interactive operator screen.
type TUI struct {
	services *service.ClientServices
	notifier *Notifier
	logger   *logger.Logger
}

func New(services *service.ClientServices, notifier *Notifier, log *logger.Logger) (*TUI, error) {
	if services == nil || notifier == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, notifier: notifier, logger: log}, nil
}

// Run blocks until the operator quits (returning nil) or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := NewRootModel(ctx, t.services.Manager, t.services.Dispatcher, t.services.AppInfo.GetAppInfo(ctx))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	forwardCtx, stop := context.WithCancel(ctx)
	defer stop()
	go t.notifier.forward(forwardCtx, program)

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Str("func", "TUI.Run").Msg("operator quit")
	}
	return nil
}
