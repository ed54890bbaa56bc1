// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-u", "https://uploads.example.com",
		"-upload-path", "/v2/upload",
		"-request-timeout", "30s",
		"-token", "secret",
		"-email", "ana@example.com",
		"-folder", "abc123",
		"-a", "localhost:9000",
		"-server-timeout", "1m",
		"-config", "/etc/uploader.json",
		"-version",
		"a.txt", "docs/",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "https://uploads.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/v2/upload", cfg.Adapter.UploadPath)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "secret", cfg.Auth.Token)
	assert.Equal(t, "ana@example.com", cfg.Upload.Email)
	assert.Equal(t, "abc123", cfg.Upload.FolderID)
	assert.Equal(t, []string{"a.txt", "docs/"}, cfg.Upload.Paths)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "/etc/uploader.json", cfg.JSONFilePath)
	assert.True(t, cfg.ShowVersion)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)

	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Empty(t, cfg.Upload.Paths)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})

	assert.Error(t, err)
}
