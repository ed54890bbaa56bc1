package client

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/MKhiriev/sharepoint-uploader/internal/auth"
	"github.com/MKhiriev/sharepoint-uploader/internal/config"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/service"
	"github.com/MKhiriev/sharepoint-uploader/internal/tui"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	tokens   auth.TokenSource
	ui       *tui.TUI
	upload   config.ClientUpload

	stdout io.Writer
	stderr io.Writer

	logger *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	tokens auth.TokenSource,
	ui *tui.TUI,
	upload config.ClientUpload,
	logger *logger.Logger,
) *App {
	return &App{
		services: services,
		tokens:   tokens,
		ui:       ui,
		upload:   upload,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		logger:   logger,
	}
}

// Run uploads headlessly when paths were given and shows the form
// otherwise. Quitting the form is not an error.
func (a *App) Run(ctx context.Context) error {
	if len(a.upload.Paths) > 0 {
		return a.runHeadless(ctx)
	}

	a.logger.Info().Msg("starting upload form")
	err := a.ui.Run(ctx, tui.FormDefaults{Email: a.upload.Email, FolderID: a.upload.FolderID})
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
