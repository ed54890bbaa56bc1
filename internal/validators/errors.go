package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmailRequired    = errors.New("Email is required.")
	ErrFolderIDRequired = errors.New("Folder ID is required.")
	ErrInvalidEmail     = errors.New("Invalid email address.")
	ErrInvalidFolderID  = errors.New("Invalid Folder ID.")
	ErrNoFiles          = errors.New("No files selected for upload.")
)
