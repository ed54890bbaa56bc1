package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sharepoint-uploader/internal/adapter"
	"github.com/MKhiriev/sharepoint-uploader/internal/auth"
	"github.com/MKhiriev/sharepoint-uploader/internal/client"
	"github.com/MKhiriev/sharepoint-uploader/internal/config"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/service"
	"github.com/MKhiriev/sharepoint-uploader/internal/tui"
	"github.com/MKhiriev/sharepoint-uploader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Println(info.String())
		return
	}

	log := logger.NewClientLogger("sharepoint-uploader")
	log.Info().Str("build", info.String()).Bool("headless", cfg.Headless()).Msg("client starting")

	uploadAdapter, err := adapter.NewHTTPUploadAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create upload adapter")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	tokens := auth.NewTokenSource(cfg.Auth)
	services := service.NewClientServices(uploadAdapter, log)
	ui := tui.New(services, tokens, info, log)
	app := client.NewApp(services, tokens, ui, cfg.Upload, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
