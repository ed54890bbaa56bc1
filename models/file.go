// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotRegularFile is returned by [NewLocalFile] when the path points to a
// directory, device or other non-regular file.
var ErrNotRegularFile = errors.New("not a regular file")

// FileHandle is an opaque reference to a locally selected file.
//
// Path is the identity of the file within a selection and must be unique
// there. Name is the display name sent as the multipart file name. Open
// returns a fresh reader over the file payload; callers close it.
type FileHandle interface {
	Path() string
	Name() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// LocalFile is a [FileHandle] backed by a file on the local file system.
// The size is captured when the handle is created.
type LocalFile struct {
	path string
	name string
	size int64
}

// NewLocalFile stats path and returns a handle for it. The path is made
// absolute so that the same file added twice under different relative
// spellings keeps a single identity.
func NewLocalFile(path string) (LocalFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return LocalFile{}, fmt.Errorf("resolve path %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return LocalFile{}, fmt.Errorf("stat %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return LocalFile{}, fmt.Errorf("%q: %w", path, ErrNotRegularFile)
	}

	return LocalFile{path: abs, name: info.Name(), size: info.Size()}, nil
}

func (f LocalFile) Path() string { return f.path }

func (f LocalFile) Name() string { return f.name }

func (f LocalFile) Size() int64 { return f.size }

// Open opens the underlying file for reading.
func (f LocalFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}
