package commands

import (
	"fmt"

	"github.com/MKhiriev/go-wa-sender/internal/client"
	"github.com/MKhiriev/go-wa-sender/internal/handler"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/server"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/internal/tui"
	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, info models.AppBuildInfo) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the terminal belongs to the TUI, logs go to a file
	log := logger.NewClientLogger(logRole, cfg.Log.File).Leveled(cfg.Log.Level)

	notifier := tui.NewNotifier(log)
	rt, err := newRuntime(cfg, info, log, service.WithNotifier(notifier))
	if err != nil {
		return err
	}

	ui, err := tui.New(rt.services, notifier, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	opts := []client.Option{client.WithUI(ui)}
	if cfg.API.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(rt.services, cfg.API, log)
		if err != nil {
			return fmt.Errorf("error creating handlers: %w", err)
		}
		srv, err := server.NewServer(handlers, cfg.API, log)
		if err != nil {
			return fmt.Errorf("error creating server: %w", err)
		}
		opts = append(opts, client.WithServer(srv))
	}

	app, err := client.NewApp(rt.services, rt.storages, log, opts...)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	return reportTerminated(cmd, app.Run(cmd.Context()))
}
