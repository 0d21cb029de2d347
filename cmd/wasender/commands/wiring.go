package commands

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wa-sender/internal/adapter"
	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/crypto"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/internal/store"
	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/spf13/cobra"
)

const logRole = "wa-sender"

type appDeps struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
}

func loadConfig(cmd *cobra.Command) (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	return cfg, nil
}

// newRuntime wires storage, transport and services for one command run.
func newRuntime(cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger, opts ...service.ManagerOption) (*appDeps, error) {
	storages := store.NewClientStorages(cfg.Session, crypto.NewKeyChainService(), log)

	transport := adapter.NewWhatsAppTransport(cfg.Session, cfg.Connection, log)
	versions := adapter.NewVersionSource(cfg.Version)

	services, err := service.NewClientServices(cfg, storages, transport, versions, info, log, opts...)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &appDeps{cfg: cfg, storages: storages, services: services}, nil
}

// reportTerminated prints the recovery procedure when the session was
// rejected by the network.
func reportTerminated(cmd *cobra.Command, err error) error {
	var terminated *service.TerminatedError
	if errors.As(err, &terminated) {
		cmd.PrintErrln(terminated.Recovery() + ": wasender reset")
	}
	return err
}
