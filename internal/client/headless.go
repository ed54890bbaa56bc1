// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/sharepoint-uploader/internal/auth"
	"github.com/MKhiriev/sharepoint-uploader/internal/store"
	"github.com/MKhiriev/sharepoint-uploader/internal/validators"
	"github.com/MKhiriev/sharepoint-uploader/models"
	"github.com/dustin/go-humanize"
)

// ErrInvalidForm wraps validation failures of a headless run.
var ErrInvalidForm = errors.New("invalid upload form")

// runHeadless uploads the configured paths once. The records returned by
// the server go to stdout as a JSON array; messages for the user go to
// stderr.
func (a *App) runHeadless(ctx context.Context) error {
	selection := store.NewSelection()
	for _, path := range a.upload.Paths {
		files, err := store.CollectLocalFiles(path)
		if err != nil {
			fmt.Fprintf(a.stderr, "Cannot add %s: %v\n", path, err)
			return fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		selection.Add(files...)
	}

	req := models.UploadRequest{
		Email:    a.upload.Email,
		FolderID: a.upload.FolderID,
		Files:    selection.Files(),
	}
	if err := a.services.Validator.Validate(ctx, req); err != nil {
		fmt.Fprintln(a.stderr, validators.Messages(err))
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	a.logger.Info().
		Int("files", selection.Len()).
		Str("total", humanize.Bytes(uint64(selection.TotalSize()))).
		Msg("headless upload started")

	req.Token = auth.TokenOrEmpty(ctx, a.tokens, a.logger)

	outcome, err := a.services.Uploader.Upload(ctx, req)
	if err != nil {
		a.reportFailure(err)
		return err
	}

	results := outcome.Results
	if results == nil {
		results = []models.FileResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode upload results: %w", err)
	}
	fmt.Fprintln(a.stdout, string(data))

	fmt.Fprintf(a.stderr, "%s %d file(s), %s in %d request(s).\n",
		models.MsgUploadSuccess, selection.Len(),
		humanize.Bytes(uint64(selection.TotalSize())), outcome.Batches)

	return nil
}

func (a *App) reportFailure(err error) {
	kind := models.KindOf(err)
	if kind == models.KindUnknown {
		a.logger.Error().Err(err).Msg("unexpected upload error")
		fmt.Fprintln(a.stderr, models.MsgUploadRejected)
		return
	}

	var uploadErr *models.UploadError
	errors.As(err, &uploadErr)

	a.logger.Error().
		Str("kind", kind.String()).
		Str("diagnostic", uploadErr.Diagnostic()).
		Msg("headless upload failed")
	fmt.Fprintln(a.stderr, uploadErr.Error())
	if notice := uploadErr.Notice(); notice != "" {
		fmt.Fprintln(a.stderr, notice)
	}
}
