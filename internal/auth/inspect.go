package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read from a JWT without verifying it.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	Expired   bool
}

// Inspect parses token without checking its signature. It only serves
// diagnostics: the client never rejects a token on its own.
func Inspect(token string) (TokenInfo, error) {
	return inspectAt(token, time.Now())
}

func inspectAt(token string, now time.Time) (TokenInfo, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
		info.Expired = !now.Before(info.ExpiresAt)
	}

	return info, nil
}
