package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds settings of the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the upload service.
	HTTPAddress string
	// UploadPath is the path of the batch upload endpoint.
	UploadPath string
	// RequestTimeout bounds one batch request; zero means transport default.
	RequestTimeout time.Duration
}

// ClientAuth holds where the client obtains its bearer token.
type ClientAuth struct {
	Token     string
	TokenFile string
}

// ClientUpload holds form values for a headless run.
type ClientUpload struct {
	Email    string
	FolderID string
	Paths    []string
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter     ClientAdapter
	Auth        ClientAuth
	Upload      ClientUpload
	ShowVersion bool
}

// Headless reports whether the client should upload without the terminal
// UI. That is the case as soon as any path is given on the command line.
func (c *ClientConfig) Headless() bool {
	return len(c.Upload.Paths) > 0
}

// ServerConfig is the stub server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	HTTPAddress    string
	UploadPath     string
	RequestTimeout time.Duration
	ShowVersion    bool
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the stub server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			UploadPath:     cfg.Adapter.UploadPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Auth: ClientAuth{
			Token:     cfg.Auth.Token,
			TokenFile: cfg.Auth.TokenFile,
		},
		Upload: ClientUpload{
			Email:    cfg.Upload.Email,
			FolderID: cfg.Upload.FolderID,
			Paths:    cfg.Upload.Paths,
		},
		ShowVersion: cfg.ShowVersion,
	}
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		UploadPath:     cfg.Server.UploadPath,
		RequestTimeout: cfg.Server.RequestTimeout,
		ShowVersion:    cfg.ShowVersion,
	}
}
