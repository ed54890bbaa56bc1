// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/sharepoint-uploader/internal/config"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
)

// StaticTokenSource always returns the same token.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// FileTokenSource reads the token from a file on every call, so a token
// refreshed on disk is picked up by the next upload. A missing file yields
// an empty token.
type FileTokenSource struct {
	Path string
}

func (f FileTokenSource) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrReadTokenFile, f.Path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// NewTokenSource picks the source configured in cfg. With neither a token
// nor a token file configured every upload goes out with an empty token.
func NewTokenSource(cfg config.ClientAuth) TokenSource {
	if cfg.TokenFile != "" {
		return FileTokenSource{Path: cfg.TokenFile}
	}
	return StaticTokenSource(cfg.Token)
}

// TokenOrEmpty asks src for a token and falls back to the empty token on
// failure. The failure is logged together with whatever [Inspect] can tell
// about a token that was obtained.
func TokenOrEmpty(ctx context.Context, src TokenSource, log *logger.Logger) string {
	if src == nil {
		return ""
	}

	token, err := src.Token(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("token source failed, sending empty token")
		return ""
	}

	info, err := Inspect(token)
	switch {
	case token == "":
		log.Debug().Msg("no bearer token available")
	case err != nil:
		log.Debug().Msg("using opaque bearer token")
	default:
		event := log.Debug().Str("subject", info.Subject).Bool("expired", info.Expired)
		if !info.ExpiresAt.IsZero() {
			event = event.Time("expires_at", info.ExpiresAt)
		}
		event.Msg("using bearer token")
	}

	return token
}
