// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
	ErrTokenExpired             = errors.New("token is expired")

	ErrInvalidMultipartForm = errors.New("invalid multipart form")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidFolderID      = errors.New("invalid parentFolderId")
	ErrNoFiles              = errors.New("no files in request")
)
