// Package tui implements the interactive upload form.
//
// The form collects an email address, a folder id and a set of local files,
// validates them and hands them to a [service.Uploader]. Results and
// failures are shown as banners that hide themselves after a few seconds.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/sharepoint-uploader/internal/auth"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/service"
	"github.com/MKhiriev/sharepoint-uploader/internal/store"
	"github.com/MKhiriev/sharepoint-uploader/internal/validators"
	"github.com/MKhiriev/sharepoint-uploader/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	uploader  service.Uploader
	validator validators.Validator
	tokens    auth.TokenSource
	selection store.FileSelection
	info      models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, tokens auth.TokenSource, info models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		uploader:  services.Uploader,
		validator: services.Validator,
		tokens:    tokens,
		selection: store.NewSelection(),
		info:      info,
		logger:    logger,
	}
}

// Run shows the form until the user quits or ctx is cancelled. Form fields
// from defaults prefill the email and folder inputs.
func (t *TUI) Run(ctx context.Context, defaults FormDefaults) error {
	model := newUploadModel(ctx, t.uploader, t.validator, t.tokens, t.selection, t.info, t.logger, defaults)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(uploadModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.cancel != nil {
		result.cancel()
	}
	if result.quitting {
		return ErrUserQuit
	}
	return nil
}
