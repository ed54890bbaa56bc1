// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the client's pending file selection in memory.
//
// Nothing is persisted: the selection lives as long as the form does and is
// cleared after a successful upload.
package store

import "github.com/MKhiriev/sharepoint-uploader/models"

// FileSelection is an ordered set of files keyed by path.
type FileSelection interface {
	// Add appends files whose path is not yet selected and returns how many
	// were added.
	Add(files ...models.FileHandle) int

	// Remove drops the file with the given path. It reports whether a file
	// was removed.
	Remove(path string) bool

	// Files returns a copy of the selection in insertion order.
	Files() []models.FileHandle

	Len() int

	// TotalSize is the sum of the sizes of all selected files.
	TotalSize() int64

	Clear()
}
