package handler

import (
	"github.com/MKhiriev/sharepoint-uploader/internal/config"
	"github.com/MKhiriev/sharepoint-uploader/internal/handler/http"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(cfg config.ServerConfig, info models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(cfg, info, logger)}, nil
}
