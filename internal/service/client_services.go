package service

import (
	"github.com/MKhiriev/sharepoint-uploader/internal/adapter"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/validators"
)

// ClientServices bundles what the UI layers need to submit the form: the
// validator that gates a request and the uploader that sends it.
type ClientServices struct {
	Uploader  Uploader
	Validator validators.Validator
}

func NewClientServices(uploadAdapter adapter.UploadAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Uploader:  NewBatchUploader(uploadAdapter, logger),
		Validator: validators.NewUploadRequestValidator(),
	}
}
