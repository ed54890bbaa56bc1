// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"ADAPTER_ADDRESS",
	"ADAPTER_UPLOAD_PATH",
	"ADAPTER_REQUEST_TIMEOUT",
	"AUTH_TOKEN",
	"AUTH_TOKEN_FILE",
	"SERVER_ADDRESS",
	"SERVER_UPLOAD_PATH",
	"SERVER_REQUEST_TIMEOUT",
	"UPLOAD_EMAIL",
	"UPLOAD_FOLDER_ID",
}

// setEnvVars clears every known key and sets vars for the test duration.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/etc/uploader.json",

		"ADAPTER_ADDRESS":         "https://uploads.example.com",
		"ADAPTER_UPLOAD_PATH":     "/v2/upload",
		"ADAPTER_REQUEST_TIMEOUT": "45s",

		"AUTH_TOKEN_FILE": "/run/token",

		"SERVER_ADDRESS":         "localhost:9000",
		"SERVER_UPLOAD_PATH":     "/hubspot/upload",
		"SERVER_REQUEST_TIMEOUT": "2m",

		"UPLOAD_EMAIL":     "ana@example.com",
		"UPLOAD_FOLDER_ID": "abc123",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/etc/uploader.json", cfg.JSONFilePath)

	assert.Equal(t, "https://uploads.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/v2/upload", cfg.Adapter.UploadPath)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)

	assert.Empty(t, cfg.Auth.Token)
	assert.Equal(t, "/run/token", cfg.Auth.TokenFile)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/hubspot/upload", cfg.Server.UploadPath)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)

	assert.Equal(t, "ana@example.com", cfg.Upload.Email)
	assert.Equal(t, "abc123", cfg.Upload.FolderID)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
