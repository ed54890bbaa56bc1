// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/sharepoint-uploader/internal/adapter"
	"github.com/MKhiriev/sharepoint-uploader/models"
)

// mapAdapterError translates an adapter failure of batch into the upload
// error taxonomy.
func mapAdapterError(err error, batch int) *models.UploadError {
	uploadErr := &models.UploadError{Batch: batch, Err: err}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		uploadErr.Status = statusErr.Code
	}

	switch {
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		uploadErr.Kind = models.AuthOrNetworkFailure
		uploadErr.Status = 0
	case errors.Is(err, adapter.ErrUnauthorized):
		uploadErr.Kind = models.AuthExpired
	case errors.Is(err, adapter.ErrInternalServerError):
		uploadErr.Kind = models.AuthOrNetworkFailure
	default:
		// ErrRejected, ErrDecodeResponse, ErrReadFile and anything the
		// adapter did not classify.
		uploadErr.Kind = models.UploadRejected
	}

	return uploadErr
}
