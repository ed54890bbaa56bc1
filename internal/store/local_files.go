// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/sharepoint-uploader/models"
)

// CollectLocalFiles resolves path into uploadable files. A regular file
// yields itself. A directory yields every regular file below it in lexical
// walk order, the way a dropped folder expands into its contents. Symlinks
// and other special files inside a directory are skipped.
func CollectLocalFiles(path string) ([]models.FileHandle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	if !info.IsDir() {
		f, err := models.NewLocalFile(path)
		if err != nil {
			return nil, err
		}
		return []models.FileHandle{f}, nil
	}

	var files []models.FileHandle
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		f, err := models.NewLocalFile(p)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrWalkingDirectory, path, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrNoRegularFiles)
	}

	return files, nil
}
