// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{
			name:    "empty address",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "address without host",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "uploads" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "relative upload path",
			mutate:  func(c *ClientConfig) { c.Adapter.UploadPath = "hubspot/upload" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "two token sources",
			mutate: func(c *ClientConfig) {
				c.Auth.Token = "t"
				c.Auth.TokenFile = "/run/token"
			},
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "headless without email",
			mutate:  func(c *ClientConfig) { c.Upload = ClientUpload{FolderID: "abc", Paths: []string{"a.txt"}} },
			wantErr: ErrInvalidUploadConfigs,
		},
		{
			name: "headless complete",
			mutate: func(c *ClientConfig) {
				c.Upload = ClientUpload{Email: "a@b.co", FolderID: "abc", Paths: []string{"a.txt"}}
			},
		},
		{
			name: "version skips validation",
			mutate: func(c *ClientConfig) {
				c.Adapter.HTTPAddress = ""
				c.ShowVersion = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Headless(t *testing.T) {
	cfg := validClientConfig()
	assert.False(t, cfg.Headless())

	cfg.Upload.Paths = []string{"report.pdf"}
	assert.True(t, cfg.Headless())
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := newServerConfig(defaultConfig())
	assert.NoError(t, cfg.validate())

	cfg.UploadPath = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = newServerConfig(defaultConfig())
	cfg.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
