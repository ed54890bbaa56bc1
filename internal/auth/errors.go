package auth

import "errors"

var (
	ErrReadTokenFile = errors.New("error reading token file")
	ErrNotJWT        = errors.New("token is not a JWT")
)
