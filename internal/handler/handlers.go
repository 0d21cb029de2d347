package handler

import (
	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/handler/http"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the API handlers. It fails when no API address is
// configured.
func NewHandlers(services *service.ClientServices, cfg config.ClientAPI, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Msg("creating new handlers...")

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
