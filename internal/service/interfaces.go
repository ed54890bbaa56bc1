// Package service holds the business logic of the uploader: splitting a
// selection into batches, sending them in order and turning transport
// outcomes into the user-facing error taxonomy of [models.UploadError].
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/uploader_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/sharepoint-uploader/models"
)

// Uploader uploads a selection of files to the remote upload service.
type Uploader interface {
	// Upload sends req.Files in batches of [BatchSize], one request at a
	// time, and stops at the first failed batch. On success it returns the
	// records of every batch concatenated in batch order.
	//
	// Every error returned is a *models.UploadError. Records of batches that
	// succeeded before a failure are discarded.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadOutcome, error)
}
