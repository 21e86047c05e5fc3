package http

import (
	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/service"
)

type Handler struct {
	services *service.Services

	// apiKey guards the catalog write endpoints (X-API-KEY header).
	apiKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, apiKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		apiKey:   apiKey,
		logger:   logger,
	}
}
