// Package auth supplies the bearer token attached to upload requests.
//
// The uploader never acquires or refreshes tokens itself. A [TokenSource]
// hands out whatever token the external authentication tool left behind,
// and the upload service decides whether it is still good.
package auth

//go:generate mockgen -source=interfaces.go -destination=../mock/token_source_mock.go -package=mock

import "context"

// TokenSource returns the current bearer token. An empty token is valid and
// is sent as is.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
