package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid upload service settings
	// (for example, an unparsable address or a relative upload path).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAuthConfigs indicates conflicting token sources.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates invalid stub server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUploadConfigs indicates an incomplete headless upload.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
)
