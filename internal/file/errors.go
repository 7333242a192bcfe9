package file

import "errors"

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrInvalidName       = errors.New("file name is required")
	ErrEmptyFile         = errors.New("file is empty")
	ErrStorageDisabled   = errors.New("file storage is not configured")
	ErrObjectUnavailable = errors.New("file content is unavailable")
)
