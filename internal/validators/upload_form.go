// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/sharepoint-uploader/models"
)

const (
	FieldEmail    = "email"
	FieldFolderID = "folder_id"
	FieldFiles    = "files"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	folderIDPattern = regexp.MustCompile(`^[0-9A-Za-z]+$`)
)

// ValidateEmail reports whether email looks like an address. The check is
// case-insensitive.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}

// ValidateFolderID reports whether id is a non-empty ASCII alphanumeric
// string.
func ValidateFolderID(id string) bool {
	return folderIDPattern.MatchString(id)
}

// ValidateUploadForm checks the form fields and returns every failed rule
// joined with [errors.Join], in display order. It returns nil when the form
// can be submitted.
func ValidateUploadForm(email, folderID string, fileCount int) error {
	var errs []error

	if email == "" {
		errs = append(errs, ErrEmailRequired)
	}
	if folderID == "" {
		errs = append(errs, ErrFolderIDRequired)
	}
	if email != "" && !ValidateEmail(email) {
		errs = append(errs, ErrInvalidEmail)
	}
	if folderID != "" && !ValidateFolderID(folderID) {
		errs = append(errs, ErrInvalidFolderID)
	}
	if fileCount == 0 {
		errs = append(errs, ErrNoFiles)
	}

	return errors.Join(errs...)
}

// Messages flattens a validation error into a single line suitable for one
// banner.
func Messages(err error) string {
	if err == nil {
		return ""
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, " ")
}

type UploadRequestValidator struct{}

func NewUploadRequestValidator() Validator {
	return &UploadRequestValidator{}
}

// Validate checks a [models.UploadRequest]. With no fields given every rule
// applies.
func (v *UploadRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		if value == nil {
			return fmt.Errorf("%w: nil upload request", ErrUnsupportedType)
		}
		return v.validateUploadRequest(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UploadRequestValidator) validateUploadRequest(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		return ValidateUploadForm(req.Email, req.FolderID, len(req.Files))
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldEmail:
			switch {
			case req.Email == "":
				errs = append(errs, ErrEmailRequired)
			case !ValidateEmail(req.Email):
				errs = append(errs, ErrInvalidEmail)
			}
		case FieldFolderID:
			switch {
			case req.FolderID == "":
				errs = append(errs, ErrFolderIDRequired)
			case !ValidateFolderID(req.FolderID):
				errs = append(errs, ErrInvalidFolderID)
			}
		case FieldFiles:
			if len(req.Files) == 0 {
				errs = append(errs, ErrNoFiles)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}
