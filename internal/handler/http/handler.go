package http

import (
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
)

type Handler struct {
	services *service.ClientServices

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, cfg config.ClientAPI, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
