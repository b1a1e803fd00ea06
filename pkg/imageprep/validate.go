package imageprep

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	// MaxUploadBytes is the hard ceiling for avatar uploads.
	MaxUploadBytes = 2 << 20
	// SoftUploadBytes is the size above which uploads get optimized.
	SoftUploadBytes = 50 << 10
	// WarnDimension is the pixel edge above which dimensions get flagged.
	WarnDimension = 500
)

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidationResult reports whether an upload is usable as an avatar.
// Errors make the upload unusable; warnings are advisory and do not
// block it.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	MIMEType string   `json:"mimeType"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Validate checks an avatar upload against the size and format limits.
// size is the declared upload size (e.g. from the multipart header);
// mimeType may be empty, in which case it is detected from the content
// itself rather than trusted from the client. The returned error covers
// I/O failures only; validation findings land in the result.
func Validate(r io.Reader, size int64, mimeType string) (ValidationResult, error) {
	result := ValidationResult{MIMEType: mimeType}

	if size <= 0 {
		result.Errors = append(result.Errors, "Image file is empty.")
		return result, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	if size > MaxUploadBytes || int64(len(data)) > MaxUploadBytes {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Image is too large (%.1fMB). Maximum size is 2MB.", float64(size)/(1<<20)))
		return result, nil
	}

	if result.MIMEType == "" {
		result.MIMEType = http.DetectContentType(data)
	}
	if !allowedMIMETypes[result.MIMEType] {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Unsupported image type %q. Use JPEG, PNG, GIF or WebP.", result.MIMEType))
		return result, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		result.Errors = append(result.Errors, "Could not read image dimensions. The file may be corrupted.")
		return result, nil
	}
	result.Width = cfg.Width
	result.Height = cfg.Height

	if cfg.Width > WarnDimension || cfg.Height > WarnDimension {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Image is %dx%d pixels. It will be resized to fit the avatar bounds.", cfg.Width, cfg.Height))
	}
	if size > SoftUploadBytes {
		result.Warnings = append(result.Warnings, "Large images will be optimized before upload.")
	}

	result.Valid = true
	return result, nil
}
