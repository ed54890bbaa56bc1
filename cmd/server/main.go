package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/sharepoint-uploader/internal/config"
	"github.com/MKhiriev/sharepoint-uploader/internal/handler"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/server"
	"github.com/MKhiriev/sharepoint-uploader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("upload-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.ShowVersion {
		fmt.Println(info.String())
		os.Exit(0)
	}

	log.Debug().Any("config", cfg).Str("build", info.String()).Msg("received configs")

	handlers, err := handler.NewHandlers(*cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
