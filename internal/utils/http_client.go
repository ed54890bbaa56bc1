package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the uploader in the upload service logs.
const UserAgent = "sharepoint-uploader"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool
// and the uploader User-Agent set. Retries are disabled: a failed batch is
// terminal for its operation.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
