package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/sharepoint-uploader/internal/config"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/utils"
	"github.com/MKhiriev/sharepoint-uploader/models"
)

const (
	fieldEmail    = "email"
	fieldFolderID = "parentFolderId"
	fieldFile     = "file"
)

type httpUploadAdapter struct {
	client     *utils.HTTPClient
	uploadPath string

	logger *logger.Logger
}

// NewHTTPUploadAdapter constructs the HTTP implementation of
// [UploadAdapter]. It normalises the base URL from cfg.HTTPAddress and
// applies cfg.RequestTimeout when it is positive; otherwise the transport
// default stays in place.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed.
func NewHTTPUploadAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UploadAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	uploadPath := cfg.UploadPath
	if uploadPath == "" {
		uploadPath = config.DefaultUploadPath
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpUploadAdapter{client: client, uploadPath: uploadPath, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PutBatch implements [UploadAdapter]. It PUTs a multipart body to the
// upload path with email and parentFolderId both as query parameters and as
// form fields, and one "file" part per handle. The Authorization header is
// always sent, even when the token is empty.
func (h *httpUploadAdapter) PutBatch(ctx context.Context, batch models.Batch) ([]models.FileResult, error) {
	form := map[string]string{
		fieldEmail:    batch.Email,
		fieldFolderID: batch.FolderID,
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+batch.Token).
		SetQueryParams(form).
		SetMultipartFormData(form)
	if batch.TraceID != "" {
		req.SetHeader(utils.TraceIDHeader, batch.TraceID)
	}

	opened := make([]io.Closer, 0, len(batch.Files))
	defer func() {
		for _, c := range opened {
			_ = c.Close()
		}
	}()

	for _, f := range batch.Files {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrReadFile, f.Path(), err)
		}
		opened = append(opened, rc)
		req.SetFileReader(fieldFile, f.Name(), rc)
	}

	resp, err := req.Put(h.uploadPath)
	if err != nil {
		return nil, fmt.Errorf("%w: batch %d: %w", ErrTransport, batch.Index, err)
	}

	h.logger.Debug().
		Int("batch", batch.Index).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int("size", len(resp.Body())).
		Msg("upload batch response")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.FileResult
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return records, nil
}
