package compat

import "strings"

// URLType classifies an image URL for email-client suitability.
type URLType string

const (
	URLTypePublic   URLType = "public"
	URLTypeData     URLType = "data"
	URLTypeRelative URLType = "relative"
	URLTypeUnknown  URLType = "unknown"
)

// URLValidation is the result of classifying an image URL.
type URLValidation struct {
	Valid    bool     `json:"valid"`
	Type     URLType  `json:"type"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// IsDataURL reports whether the string is an inline data: URL.
func IsDataURL(url string) bool {
	return strings.HasPrefix(url, "data:")
}

// ClassifyImageURL validates an image URL for use in a signature. Only
// absolute http(s) URLs are acceptable; data URLs and relative paths are
// errors, and plain http gets an insecure-loading warning.
func ClassifyImageURL(url string) URLValidation {
	result := URLValidation{Type: URLTypeUnknown}

	if url == "" {
		result.Errors = append(result.Errors, "No image URL provided")
		return result
	}

	if IsDataURL(url) {
		result.Type = URLTypeData
		result.Errors = append(result.Errors,
			"Data URLs are not recommended for email signatures. They may be blocked by Gmail and cause large file sizes.")
		result.Warnings = append(result.Warnings, "Please upload the image to get a public URL.")
		return result
	}

	if strings.HasPrefix(url, "/") || strings.HasPrefix(url, "./") || strings.HasPrefix(url, "../") {
		result.Type = URLTypeRelative
		result.Errors = append(result.Errors,
			"Relative URLs will not work in email signatures. Use absolute URLs (https://...)")
		return result
	}

	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		result.Type = URLTypePublic
		result.Valid = true
		if strings.HasPrefix(url, "http://") {
			result.Warnings = append(result.Warnings,
				"Using HTTP instead of HTTPS. Some email clients may block insecure images.")
		}
		return result
	}

	result.Errors = append(result.Errors, "Invalid URL format. Must be an absolute URL starting with https://")
	return result
}
