package compat

import (
	"fmt"
	"math"
)

const (
	// HardSizeLimitKB is Gmail's approximate signature size ceiling.
	HardSizeLimitKB = 10
	// RecommendedSizeLimitKB leaves some buffer under the hard ceiling.
	RecommendedSizeLimitKB = 8
)

// SizeInfo is the result of estimating a signature's byte size.
type SizeInfo struct {
	ByteLength  int      `json:"byteLength"`
	Kilobytes   float64  `json:"kilobytes"`
	WithinLimit bool     `json:"withinLimit"`
	Warnings    []string `json:"warnings,omitempty"`
}

// EstimateSize measures the UTF-8 encoded byte length of the HTML, not the
// character count, because email clients truncate by bytes. The kilobyte
// figure is rounded to two decimals for display.
func EstimateSize(html string) SizeInfo {
	byteLength := len(html)
	kb := float64(byteLength) / 1024

	info := SizeInfo{
		ByteLength:  byteLength,
		Kilobytes:   math.Round(kb*100) / 100,
		WithinLimit: kb <= HardSizeLimitKB,
	}

	if kb > HardSizeLimitKB {
		info.Warnings = append(info.Warnings,
			fmt.Sprintf("Signature size (%.2fKB) exceeds Gmail's ~10KB limit. Gmail may truncate your signature.", info.Kilobytes),
			"Consider: 1) Using smaller images, 2) Removing unnecessary elements, 3) Simplifying styling",
		)
	} else if kb > RecommendedSizeLimitKB {
		info.Warnings = append(info.Warnings,
			fmt.Sprintf("Signature size (%.2fKB) is close to Gmail's limit. Consider optimizing.", info.Kilobytes),
		)
	}

	return info
}
