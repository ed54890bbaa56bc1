// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/utils"
	"github.com/MKhiriev/sharepoint-uploader/internal/validators"
	"github.com/MKhiriev/sharepoint-uploader/models"
	"github.com/dustin/go-humanize"
)

const (
	queryEmail    = "email"
	queryFolderID = "parentFolderId"
	formFile      = "file"

	// maxMemory is the part of a multipart body kept in memory; the rest
	// spills to temporary files.
	maxMemory = 32 << 20
)

// upload accepts one batch: email and parentFolderId as query parameters
// (form fields are used when the query lacks them) and any number of "file"
// parts. It answers with a JSON array holding one [models.UploadedFile] per
// part, in request order.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		log.Err(err).Msg("error parsing multipart form")
		http.Error(w, ErrInvalidMultipartForm.Error(), http.StatusBadRequest)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	email := firstNonEmpty(r.URL.Query().Get(queryEmail), r.MultipartForm.Value[queryEmail])
	if !validators.ValidateEmail(email) {
		log.Err(ErrInvalidEmail).Str("email", email).Send()
		http.Error(w, ErrInvalidEmail.Error(), http.StatusBadRequest)
		return
	}

	folderID := firstNonEmpty(r.URL.Query().Get(queryFolderID), r.MultipartForm.Value[queryFolderID])
	if !validators.ValidateFolderID(folderID) {
		log.Err(ErrInvalidFolderID).Str("parent_folder_id", folderID).Send()
		http.Error(w, ErrInvalidFolderID.Error(), http.StatusBadRequest)
		return
	}

	parts := r.MultipartForm.File[formFile]
	if len(parts) == 0 {
		log.Err(ErrNoFiles).Send()
		http.Error(w, ErrNoFiles.Error(), http.StatusBadRequest)
		return
	}

	records := make([]models.UploadedFile, 0, len(parts))
	var total int64
	for _, part := range parts {
		records = append(records, models.UploadedFile{
			ID:             h.ids.Generate(),
			Name:           part.Filename,
			Size:           part.Size,
			ParentFolderID: folderID,
			Email:          email,
		})
		total += part.Size
	}

	log.Info().
		Int("files", len(records)).
		Str("total", humanize.Bytes(uint64(total))).
		Str("parent_folder_id", folderID).
		Msg("batch received")

	if _, err := utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(fmt.Errorf("error writing upload response: %w", err)).Send()
	}
}

func firstNonEmpty(value string, fallback []string) string {
	if value != "" || len(fallback) == 0 {
		return value
	}
	return fallback[0]
}
