// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the remote
// upload service.
//
// The primary abstraction is [UploadAdapter], which decouples the upload
// service from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPUploadAdapter]) built on resty.
//
// Transport and status failures are reported through the sentinel values in
// errors.go so callers can classify them with [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrTransport] when no response was received).
package adapter

import (
	"context"

	"github.com/MKhiriev/sharepoint-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_adapter_mock.go -package=mock

// UploadAdapter sends one batch of files to the upload service.
type UploadAdapter interface {
	// PutBatch uploads every file of batch in a single request and returns
	// the per-file records from the response, in server order.
	//
	// The returned error wraps [ErrTransport] when no response was
	// obtained, [ErrReadFile] when a local file could not be opened,
	// [ErrUnauthorized], [ErrInternalServerError] or [ErrRejected] for
	// non-2xx statuses, and [ErrDecodeResponse] when a 2xx body is not a
	// JSON array.
	PutBatch(ctx context.Context, batch models.Batch) ([]models.FileResult, error)
}
