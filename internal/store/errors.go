package store

import "errors"

var (
	// ErrNoRegularFiles is returned by [CollectLocalFiles] when a path holds
	// nothing that can be uploaded.
	ErrNoRegularFiles = errors.New("no regular files found")

	ErrWalkingDirectory = errors.New("failed to walk directory")
)
