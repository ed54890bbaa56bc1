// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/sharepoint-uploader/internal/adapter"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/mock"
	"github.com/MKhiriev/sharepoint-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memFile is an in-memory FileHandle.
type memFile struct {
	name string
}

func (f memFile) Path() string                 { return "/in-memory/" + f.name }
func (f memFile) Name() string                 { return f.name }
func (f memFile) Size() int64                  { return int64(len(f.name)) }
func (f memFile) Open() (io.ReadCloser, error) { return io.NopCloser(bytes.NewBufferString(f.name)), nil }

func makeFiles(n int) []models.FileHandle {
	files := make([]models.FileHandle, n)
	for i := range files {
		files[i] = memFile{name: fmt.Sprintf("f%03d.txt", i)}
	}
	return files
}

// echoRecords returns one record per file of the batch, naming the file.
func echoRecords(batch models.Batch) []models.FileResult {
	records := make([]models.FileResult, len(batch.Files))
	for i, f := range batch.Files {
		records[i] = models.FileResult(fmt.Sprintf(`{"name":%q}`, f.Name()))
	}
	return records
}

func newTestUploader(t *testing.T, ctrl *gomock.Controller) (Uploader, *mock.MockUploadAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockUploadAdapter(ctrl)
	return NewBatchUploader(mockAdapter, logger.Nop()), mockAdapter
}

func testRequest(n int) models.UploadRequest {
	return models.UploadRequest{
		Email:    "ana@example.com",
		FolderID: "abc123",
		Token:    "tok",
		Files:    makeFiles(n),
	}
}

func requireUploadError(t *testing.T, err error) *models.UploadError {
	t.Helper()
	var uploadErr *models.UploadError
	require.True(t, errors.As(err, &uploadErr), "expected *models.UploadError, got %T", err)
	return uploadErr
}

func statusFailure(sentinel error, code int, body string) error {
	return fmt.Errorf("%w: %w", sentinel, &adapter.StatusError{Code: code, Body: body})
}

// ── empty selection ─────────────────────────────────────────────────────────

func TestBatchUploader_NoFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, _ := newTestUploader(t, ctrl)

	outcome, err := uploader.Upload(context.Background(), testRequest(0))

	uploadErr := requireUploadError(t, err)
	assert.Equal(t, models.NoFiles, uploadErr.Kind)
	assert.Equal(t, 0, uploadErr.Batch)
	assert.Equal(t, models.MsgNoFiles, err.Error())
	assert.Empty(t, outcome.Results)
	assert.Zero(t, outcome.Batches)
}

// ── batching ────────────────────────────────────────────────────────────────

func TestBatchUploader_SplitsIntoOrderedBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, mockAdapter := newTestUploader(t, ctrl)
	req := testRequest(250)

	var seen []models.Batch
	mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch models.Batch) ([]models.FileResult, error) {
			seen = append(seen, batch)
			return echoRecords(batch), nil
		}).Times(3)

	outcome, err := uploader.Upload(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.Len(t, seen[0].Files, 100)
	assert.Len(t, seen[1].Files, 100)
	assert.Len(t, seen[2].Files, 50)

	var sent []models.FileHandle
	for i, batch := range seen {
		assert.Equal(t, i+1, batch.Index)
		assert.Equal(t, "ana@example.com", batch.Email)
		assert.Equal(t, "abc123", batch.FolderID)
		assert.Equal(t, "tok", batch.Token)
		assert.NotEmpty(t, batch.TraceID)
		assert.Equal(t, seen[0].TraceID, batch.TraceID)
		sent = append(sent, batch.Files...)
	}
	assert.Equal(t, req.Files, sent)

	assert.Equal(t, 3, outcome.Batches)
	require.Len(t, outcome.Results, 250)
	for i, record := range outcome.Results {
		var decoded struct{ Name string }
		require.NoError(t, json.Unmarshal(record, &decoded))
		assert.Equal(t, req.Files[i].Name(), decoded.Name)
	}
}

func TestBatchUploader_BatchCount(t *testing.T) {
	tests := []struct {
		files   int
		batches int
	}{
		{files: 1, batches: 1},
		{files: 99, batches: 1},
		{files: 100, batches: 1},
		{files: 101, batches: 2},
		{files: 200, batches: 2},
		{files: 201, batches: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d files", tt.files), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uploader, mockAdapter := newTestUploader(t, ctrl)
			mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, batch models.Batch) ([]models.FileResult, error) {
					assert.LessOrEqual(t, len(batch.Files), BatchSize)
					return echoRecords(batch), nil
				}).Times(tt.batches)

			outcome, err := uploader.Upload(context.Background(), testRequest(tt.files))

			require.NoError(t, err)
			assert.Equal(t, tt.batches, outcome.Batches)
			assert.Len(t, outcome.Results, tt.files)
		})
	}
}

func TestBatchUploader_ServerMayReturnFewerRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, mockAdapter := newTestUploader(t, ctrl)
	mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).Return([]models.FileResult{}, nil).Times(2)

	outcome, err := uploader.Upload(context.Background(), testRequest(150))

	require.NoError(t, err)
	assert.Empty(t, outcome.Results)
	assert.Equal(t, 2, outcome.Batches)
}

func TestBatchUploader_DoesNotMutateInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, mockAdapter := newTestUploader(t, ctrl)
	req := testRequest(120)
	snapshot := append([]models.FileHandle(nil), req.Files...)

	mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch models.Batch) ([]models.FileResult, error) {
			return echoRecords(batch), nil
		}).Times(2)

	_, err := uploader.Upload(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, snapshot, req.Files)
	assert.Len(t, req.Files, 120)
}

// ── failure classification ──────────────────────────────────────────────────

func TestBatchUploader_StopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, mockAdapter := newTestUploader(t, ctrl)
	ok := func(_ context.Context, batch models.Batch) ([]models.FileResult, error) {
		return echoRecords(batch), nil
	}

	gomock.InOrder(
		mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).DoAndReturn(ok),
		mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).
			Return(nil, statusFailure(adapter.ErrUnauthorized, http.StatusUnauthorized, "expired")),
	)

	outcome, err := uploader.Upload(context.Background(), testRequest(300))

	uploadErr := requireUploadError(t, err)
	assert.Equal(t, models.AuthExpired, uploadErr.Kind)
	assert.Equal(t, 2, uploadErr.Batch)
	assert.Equal(t, http.StatusUnauthorized, uploadErr.Status)
	assert.Empty(t, outcome.Results)
}

func TestBatchUploader_Classification(t *testing.T) {
	tests := []struct {
		name       string
		adapterErr error
		kind       models.ErrorKind
		status     int
		message    string
		notice     string
	}{
		{
			name:       "401 means expired auth",
			adapterErr: statusFailure(adapter.ErrUnauthorized, http.StatusUnauthorized, "token expired"),
			kind:       models.AuthExpired,
			status:     http.StatusUnauthorized,
			message:    models.MsgAuthFailed,
		},
		{
			name:       "500 surfaces as auth failure with notice",
			adapterErr: statusFailure(adapter.ErrInternalServerError, http.StatusInternalServerError, "boom"),
			kind:       models.AuthOrNetworkFailure,
			status:     http.StatusInternalServerError,
			message:    models.MsgAuthFailed,
			notice:     models.MsgServerNotice,
		},
		{
			name:       "network failure",
			adapterErr: fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrTransport),
			kind:       models.AuthOrNetworkFailure,
			message:    models.MsgAuthFailed,
		},
		{
			name:       "403 is a rejection",
			adapterErr: statusFailure(adapter.ErrRejected, http.StatusForbidden, "forbidden"),
			kind:       models.UploadRejected,
			status:     http.StatusForbidden,
			message:    models.MsgUploadRejected,
		},
		{
			name:       "502 is a rejection",
			adapterErr: statusFailure(adapter.ErrRejected, http.StatusBadGateway, "bad gateway"),
			kind:       models.UploadRejected,
			status:     http.StatusBadGateway,
			message:    models.MsgUploadRejected,
		},
		{
			name:       "undecodable body",
			adapterErr: fmt.Errorf("%w: unexpected end of JSON input", adapter.ErrDecodeResponse),
			kind:       models.UploadRejected,
			message:    models.MsgUploadRejected,
		},
		{
			name:       "local file unreadable",
			adapterErr: fmt.Errorf("%w %q: permission denied", adapter.ErrReadFile, "/tmp/a"),
			kind:       models.UploadRejected,
			message:    models.MsgUploadRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uploader, mockAdapter := newTestUploader(t, ctrl)
			mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).Return(nil, tt.adapterErr).Times(1)

			_, err := uploader.Upload(context.Background(), testRequest(250))

			uploadErr := requireUploadError(t, err)
			assert.Equal(t, tt.kind, uploadErr.Kind)
			assert.Equal(t, 1, uploadErr.Batch)
			assert.Equal(t, tt.status, uploadErr.Status)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.notice, uploadErr.Notice())
			assert.ErrorIs(t, err, tt.adapterErr)
		})
	}
}

func TestBatchUploader_ResponseBodyNeverSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, mockAdapter := newTestUploader(t, ctrl)
	mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).
		Return(nil, statusFailure(adapter.ErrRejected, http.StatusBadRequest, "stack trace: secret"))

	_, err := uploader.Upload(context.Background(), testRequest(1))

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
	assert.Contains(t, requireUploadError(t, err).Diagnostic(), "secret")
}

// ── cancellation ────────────────────────────────────────────────────────────

func TestBatchUploader_CancelledBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, _ := newTestUploader(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := uploader.Upload(ctx, testRequest(10))

	uploadErr := requireUploadError(t, err)
	assert.Equal(t, models.AuthOrNetworkFailure, uploadErr.Kind)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, outcome.Batches)
}

func TestBatchUploader_CancelledBetweenBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, mockAdapter := newTestUploader(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch models.Batch) ([]models.FileResult, error) {
			cancel()
			return echoRecords(batch), nil
		}).Times(1)

	_, err := uploader.Upload(ctx, testRequest(250))

	uploadErr := requireUploadError(t, err)
	assert.Equal(t, models.AuthOrNetworkFailure, uploadErr.Kind)
	assert.Equal(t, 2, uploadErr.Batch)
	assert.Zero(t, uploadErr.Status)
}

func TestBatchUploader_InFlightRequestSeesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploader, mockAdapter := newTestUploader(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	mockAdapter.EXPECT().PutBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(reqCtx context.Context, _ models.Batch) ([]models.FileResult, error) {
			cancel()
			<-reqCtx.Done()
			return nil, fmt.Errorf("%w: %w", adapter.ErrTransport, reqCtx.Err())
		})

	_, err := uploader.Upload(ctx, testRequest(5))

	assert.Equal(t, models.AuthOrNetworkFailure, models.KindOf(err))
}
