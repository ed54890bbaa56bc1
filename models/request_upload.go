package models

import "encoding/json"

// UploadRequest is the input of a single upload operation.
type UploadRequest struct {
	// Email of the submitter. Sent both as a query parameter and as a
	// multipart field.
	Email string

	// FolderID is the destination folder identifier (parentFolderId on the
	// wire).
	FolderID string

	// Files is the ordered selection to upload. It is treated as read-only.
	Files []FileHandle

	// Token is the bearer credential. May be empty; the server is expected
	// to reject it in that case.
	Token string
}

// Batch is one contiguous chunk of an [UploadRequest] sent in a single HTTP
// request.
type Batch struct {
	// Index is the 1-based position of the batch inside its operation.
	Index int

	// TraceID correlates all batches of one operation in client and server
	// logs.
	TraceID string

	Email    string
	FolderID string
	Token    string
	Files    []FileHandle
}

// FileResult is a per-file record returned by the upload service. Its shape
// is owned by the server and passed through to the caller unmodified.
type FileResult = json.RawMessage

// UploadOutcome is the aggregate result of a successful upload operation.
type UploadOutcome struct {
	// Results is the concatenation, in batch order, of every batch's
	// response records.
	Results []FileResult

	// Batches is the number of HTTP requests that were sent.
	Batches int
}
