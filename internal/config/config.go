// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

const (
	// DefaultUploadServiceAddress is the deployed SharePoint/HubSpot
	// integration the uploader talks to when nothing else is configured.
	DefaultUploadServiceAddress = "https://sharepoint-integration-with-hubspot.onrender.com"

	// DefaultUploadPath is the path of the batch upload endpoint.
	DefaultUploadPath = "/hubspot/upload"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the outbound upload service settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds where the bearer token comes from.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds the stub upload server settings.
	Server Server `envPrefix:"SERVER_"`

	// Upload holds the form values for a headless (non-interactive) run.
	Upload Upload `envPrefix:"UPLOAD_"`

	// ShowVersion prints build information and exits. Flag only.
	ShowVersion bool

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the upload service
	// (e.g. "https://uploads.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// UploadPath is the path of the batch upload endpoint.
	// Env: ADAPTER_UPLOAD_PATH
	UploadPath string `env:"UPLOAD_PATH"`

	// RequestTimeout bounds a single batch request. Zero leaves the
	// transport default in place.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth describes how the bearer token is supplied. At most one of Token
// and TokenFile may be set; with neither, uploads carry an empty token.
type Auth struct {
	// Token is a literal bearer token.
	// Env: AUTH_TOKEN
	Token string `env:"TOKEN"`

	// TokenFile is a file holding the bearer token. It is re-read before
	// every upload so an external tool can refresh it.
	// Env: AUTH_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// Server holds settings of the stub upload server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// UploadPath is the path the stub serves uploads on.
	// Env: SERVER_UPLOAD_PATH
	UploadPath string `env:"UPLOAD_PATH"`

	// RequestTimeout bounds reading a request including its body.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Upload carries form values for a headless run.
type Upload struct {
	// Env: UPLOAD_EMAIL
	Email string `env:"EMAIL"`

	// Env: UPLOAD_FOLDER_ID
	FolderID string `env:"FOLDER_ID"`

	// Paths are files or directories to upload. Taken from positional
	// command-line arguments.
	Paths []string
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Later sources override non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: DefaultUploadServiceAddress,
			UploadPath:  DefaultUploadPath,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			UploadPath:     DefaultUploadPath,
			RequestTimeout: time.Minute,
		},
	}
}
