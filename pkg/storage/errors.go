package storage

import "errors"

var (
	// ErrMissingConfig indicates required storage configuration is absent.
	ErrMissingConfig = errors.New("storage: bucket, access key, and secret key are required")

	// ErrUploadFailed indicates the object could not be stored.
	ErrUploadFailed = errors.New("storage: upload failed")

	// ErrDeleteFailed indicates the object could not be removed.
	ErrDeleteFailed = errors.New("storage: delete failed")

	// ErrUnsupportedContentType indicates the upload is not an allowed image type.
	ErrUnsupportedContentType = errors.New("storage: unsupported content type")

	// ErrObjectTooLarge indicates the upload exceeds the configured size limit.
	ErrObjectTooLarge = errors.New("storage: object exceeds maximum size")
)
