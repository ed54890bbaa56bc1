package models

// UploadedFile is the record the stub upload service returns for every file
// it received. The real service may return a different shape; the uploader
// treats records as opaque [FileResult] values.
type UploadedFile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Size           int64  `json:"size"`
	ParentFolderID string `json:"parentFolderId"`
	Email          string `json:"email"`
}
