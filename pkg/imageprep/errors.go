package imageprep

import "errors"

var (
	// Processing errors
	ErrDecodeFailed = errors.New("failed to decode image")
	ErrEncodeFailed = errors.New("failed to encode image")

	// Pipeline errors
	ErrSuperseded       = errors.New("submission superseded by a newer upload")
	ErrInlineUploadURL  = errors.New("uploader returned an inline data URL")
	ErrFailedToReadFile = errors.New("failed to read image data")
)
