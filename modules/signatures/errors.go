package signatures

import "errors"

var (
	ErrSignatureNotFound    = errors.New("signature not found")
	ErrUnknownTemplate      = errors.New("unknown template id")
	ErrUploadInFlight       = errors.New("avatar upload still in progress")
	ErrEmbeddedImage        = errors.New("signature image must be a public URL, not embedded data")
	ErrUploadsNotConfigured = errors.New("avatar uploads are not configured")
	ErrPresignNotConfigured = errors.New("presigned uploads are not configured")
)
