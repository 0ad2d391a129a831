package http

import (
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
)

type Handler struct {
	services *service.Services
	sessions store.SessionSource

	server config.Server
	cors   config.CORS

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions store.SessionSource, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		server:   cfg.Server,
		cors:     cfg.CORS,
		logger:   logger,
	}
}
