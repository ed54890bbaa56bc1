// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sharepoint-uploader/internal/adapter"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/utils"
	"github.com/MKhiriev/sharepoint-uploader/models"
)

// BatchSize is the maximum number of files sent in one request.
const BatchSize = 100

type batchUploader struct {
	adapter adapter.UploadAdapter
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewBatchUploader returns an [Uploader] that sends batches through
// uploadAdapter.
func NewBatchUploader(uploadAdapter adapter.UploadAdapter, logger *logger.Logger) Uploader {
	return &batchUploader{
		adapter: uploadAdapter,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (u *batchUploader) Upload(ctx context.Context, req models.UploadRequest) (models.UploadOutcome, error) {
	if len(req.Files) == 0 {
		return models.UploadOutcome{}, &models.UploadError{Kind: models.NoFiles}
	}

	operationID := u.ids.Generate()
	log := u.logger.WithField("trace_id", operationID)

	chunks := partition(req.Files, BatchSize)
	log.Info().
		Int("files", len(req.Files)).
		Int("batches", len(chunks)).
		Msg("upload started")

	outcome := models.UploadOutcome{Results: make([]models.FileResult, 0, len(req.Files))}
	for i, files := range chunks {
		index := i + 1

		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("batch", index).Msg("upload abandoned before batch")
			return models.UploadOutcome{}, mapAdapterError(err, index)
		}

		batch := models.Batch{
			Index:    index,
			TraceID:  operationID,
			Email:    req.Email,
			FolderID: req.FolderID,
			Token:    req.Token,
			Files:    files,
		}

		start := time.Now()
		records, err := u.adapter.PutBatch(ctx, batch)
		outcome.Batches++
		latency := time.Since(start)

		if err != nil {
			uploadErr := mapAdapterError(err, index)
			log.Error().
				Err(err).
				Int("batch", index).
				Int("size", len(files)).
				Int("status", uploadErr.Status).
				Dur("latency", latency).
				Str("kind", uploadErr.Kind.String()).
				Int("uploaded_before_failure", len(outcome.Results)).
				Msg("upload batch failed")
			return models.UploadOutcome{}, uploadErr
		}

		log.Info().
			Int("batch", index).
			Int("size", len(files)).
			Int("records", len(records)).
			Dur("latency", latency).
			Msg("upload batch done")

		outcome.Results = append(outcome.Results, records...)
	}

	log.Info().
		Int("batches", outcome.Batches).
		Int("records", len(outcome.Results)).
		Msg("upload finished")

	return outcome, nil
}
