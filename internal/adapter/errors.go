package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrTransport           = errors.New("upload service unreachable")
	ErrReadFile            = errors.New("read local file")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrInternalServerError = errors.New("internal server error")
	ErrRejected            = errors.New("upload rejected")
	ErrDecodeResponse      = errors.New("decode upload response")
)

// StatusError describes a non-2xx response. Body is trimmed response text
// kept for diagnostics.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}
