package service

import (
	"fmt"

	"github.com/MKhiriev/go-wa-sender/internal/adapter"
	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/store"
	"github.com/MKhiriev/go-wa-sender/models"
)

type ClientServices struct {
	Manager    ConnectionManager
	Resolver   RecipientResolver
	Dispatcher Dispatcher
	AppInfo    AppInfoService
}

func NewClientServices(
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	transport adapter.Transport,
	versions adapter.VersionSource,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
	opts ...ManagerOption,
) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	manager := NewConnectionManager(transport, versions, storages.Credentials, cfg, log, opts...)
	resolver := NewRecipientResolver(cfg.Connection.MinRecipientDigits, log)

	return &ClientServices{
		Manager:    manager,
		Resolver:   resolver,
		Dispatcher: NewDispatcher(manager, resolver, log),
		AppInfo:    appInfo,
	}, nil
}
