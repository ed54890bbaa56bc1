package tui

import "github.com/MKhiriev/sharepoint-uploader/models"

// uploadDoneMsg carries the result of the upload started as operation seq.
type uploadDoneMsg struct {
	seq     int
	outcome models.UploadOutcome
	err     error
}

// bannerExpiredMsg hides the banner in slot if it still shows banner id.
type bannerExpiredMsg struct {
	slot bannerSlot
	id   int
}

type copiedMsg struct {
	err error
}
