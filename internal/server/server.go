package server

import (
	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/handler"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
)

// NewServer creates the HTTP API server. It fails when the API is disabled.
func NewServer(handlers *handler.Handlers, cfg config.ClientAPI, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	logger.Info().Msg("creating new server...")
	return newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, cfg.RequestTimeout, logger), nil
}
