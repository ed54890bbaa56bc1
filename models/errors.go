// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed upload operation. The set is closed: every
// failure of the uploader is reported as exactly one of these kinds.
type ErrorKind int

const (
	// KindUnknown is the zero value and is never produced by the uploader.
	KindUnknown ErrorKind = iota
	// NoFiles means the request carried an empty file list.
	NoFiles
	// AuthExpired means the server answered 401.
	AuthExpired
	// AuthOrNetworkFailure means the server could not be reached or
	// answered 500. Both surface to the user as an authentication problem.
	AuthOrNetworkFailure
	// UploadRejected means the server refused the batch for any other
	// reason, or the batch could not be assembled or decoded.
	UploadRejected
)

const (
	MsgNoFiles        = "No files selected for upload."
	MsgAuthFailed     = "Authentication failed. Please log in again through the Microsoft authentication extension card."
	MsgUploadRejected = "Upload failed. Please check your email and ID."
	MsgServerNotice   = "Upload failed. Please check your email and Folder ID."
	MsgUploadSuccess  = "Files uploaded successfully."
)

func (k ErrorKind) String() string {
	switch k {
	case NoFiles:
		return "NoFiles"
	case AuthExpired:
		return "AuthExpired"
	case AuthOrNetworkFailure:
		return "AuthOrNetworkFailure"
	case UploadRejected:
		return "UploadRejected"
	default:
		return "Unknown"
	}
}

// Message returns the user-facing text for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case NoFiles:
		return MsgNoFiles
	case AuthExpired, AuthOrNetworkFailure:
		return MsgAuthFailed
	default:
		return MsgUploadRejected
	}
}

// UploadError is the only error type returned by the uploader.
//
// Error returns the user-facing message only. The diagnostic cause (status
// text, response body, transport error) is kept in Err for logging and is
// reachable with errors.Unwrap.
type UploadError struct {
	Kind ErrorKind

	// Batch is the 1-based index of the batch that failed, 0 if no batch
	// was attempted.
	Batch int

	// Status is the HTTP status of the failing response, 0 if none was
	// received.
	Status int

	Err error
}

func (e *UploadError) Error() string {
	return e.Kind.Message()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Notice returns the secondary short-lived message that accompanies the
// main one, or an empty string. It is set only when the server answered
// with 500.
func (e *UploadError) Notice() string {
	if e.Kind == AuthOrNetworkFailure && e.Status == http.StatusInternalServerError {
		return MsgServerNotice
	}
	return ""
}

// Diagnostic returns a description suitable for logs, never for users.
func (e *UploadError) Diagnostic() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (batch %d, status %d)", e.Kind, e.Batch, e.Status)
	}
	return fmt.Sprintf("%s (batch %d, status %d): %v", e.Kind, e.Batch, e.Status, e.Err)
}

// KindOf returns the kind carried by err, or KindUnknown when err is nil or
// not an [UploadError].
func KindOf(err error) ErrorKind {
	var uploadErr *UploadError
	if errors.As(err, &uploadErr) {
		return uploadErr.Kind
	}
	return KindUnknown
}
