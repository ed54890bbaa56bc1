package http

import (
	"github.com/MKhiriev/sharepoint-uploader/internal/config"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/utils"
	"github.com/MKhiriev/sharepoint-uploader/models"
)

type Handler struct {
	uploadPath string
	ids        *utils.UUIDGenerator
	info       models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(cfg config.ServerConfig, info models.AppBuildInfo, logger *logger.Logger) *Handler {
	uploadPath := cfg.UploadPath
	if uploadPath == "" {
		uploadPath = config.DefaultUploadPath
	}

	logger.Info().Str("upload_path", uploadPath).Msg("http handler created")
	return &Handler{
		uploadPath: uploadPath,
		ids:        utils.NewUUIDGenerator(),
		info:       info,
		logger:     logger,
	}
}
