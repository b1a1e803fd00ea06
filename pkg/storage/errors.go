package storage

import "errors"

var (
	// Configuration errors
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrFailedToLoadConfig   = errors.New("failed to load AWS config")
	ErrPresignNotConfigured = errors.New("presign client not configured")

	// Upload errors
	ErrEmptyUpload            = errors.New("upload data is empty")
	ErrUnsupportedContentType = errors.New("content type is not supported")

	// S3-specific errors for proper error classification
	ErrObjectNotFound     = errors.New("object not found")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	// Context and cancellation errors
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
