package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Any other status is wrapped
// in a [StatusError] joined with the matching sentinel.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	statusErr := &StatusError{Code: resp.StatusCode(), Body: body}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, statusErr)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrInternalServerError, statusErr)
	default:
		return fmt.Errorf("%w: %w", ErrRejected, statusErr)
	}
}
