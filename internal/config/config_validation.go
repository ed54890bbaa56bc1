// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks invariants shared by every view of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("negative request timeout: %w", ErrInvalidAdapterConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ShowVersion {
		return nil
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if cfg.Adapter.HTTPAddress == "" || err != nil || u.Host == "" {
		return fmt.Errorf("upload service address %q: %w", cfg.Adapter.HTTPAddress, ErrInvalidAdapterConfigs)
	}
	if !strings.HasPrefix(cfg.Adapter.UploadPath, "/") {
		return fmt.Errorf("upload path %q must be absolute: %w", cfg.Adapter.UploadPath, ErrInvalidAdapterConfigs)
	}

	if cfg.Auth.Token != "" && cfg.Auth.TokenFile != "" {
		return fmt.Errorf("token and token file are mutually exclusive: %w", ErrInvalidAuthConfigs)
	}

	if cfg.Headless() && (cfg.Upload.Email == "" || cfg.Upload.FolderID == "") {
		return fmt.Errorf("headless upload needs -email and -folder: %w", ErrInvalidUploadConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.ShowVersion {
		return nil
	}

	if cfg.HTTPAddress == "" {
		return fmt.Errorf("empty listen address: %w", ErrInvalidServerConfigs)
	}
	if !strings.HasPrefix(cfg.UploadPath, "/") {
		return fmt.Errorf("upload path %q must be absolute: %w", cfg.UploadPath, ErrInvalidServerConfigs)
	}

	return nil
}
