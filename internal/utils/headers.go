package utils

import (
	"errors"
	"strings"
)

// TraceIDHeader carries the operation id from the uploader to the server so
// both sides log the same value.
const TraceIDHeader = "X-Trace-ID"

var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrEmptyToken                 = errors.New("empty bearer token")
)

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
//
// It returns [ErrEmptyToken] for "Bearer" or "Bearer " and
// [ErrInvalidAuthorizationHeader] for any other malformed value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	fields := strings.Fields(authorizationHeader)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	switch len(fields) {
	case 1:
		return "", ErrEmptyToken
	case 2:
		return fields[1], nil
	default:
		return "", ErrInvalidAuthorizationHeader
	}
}
