package compat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// Severity ranks a compatibility issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one compatibility finding. Fix carries an optional remediation
// hint. Issues are produced fresh on every check and never persisted.
type Issue struct {
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Fix      string   `json:"fix,omitempty"`
}

var modernCSSRe = regexp.MustCompile(`(?i)(display:\s*flex|flexbox|grid|@media|vh|vw)`)

// Check analyzes signature HTML plus the avatar image state and returns the
// issues found, in rule order: image URL, size, embedded data URLs,
// structural HTML, CSS classes, modern CSS. Rules run independently and do
// not short-circuit; a single signature can surface several issues at once.
// When every rule passes, exactly one informational issue summarizes the
// measured size.
func Check(html string, image signature.ImageState) []Issue {
	var found []Issue

	// Rule 1: image URL classification. Skipped when no image is attached;
	// an absent avatar is not an issue.
	if image.IsSet() {
		validation := ClassifyImageURL(image.URL())
		if !validation.Valid {
			msg := "Invalid image URL"
			if len(validation.Errors) > 0 {
				msg = validation.Errors[0]
			}
			found = append(found, Issue{
				Severity: SeverityError,
				Title:    "Image URL Issue",
				Message:  msg,
				Fix:      "Upload your avatar to get a public URL",
			})
		}
		if len(validation.Warnings) > 0 {
			found = append(found, Issue{
				Severity: SeverityWarning,
				Title:    "Image URL Warning",
				Message:  validation.Warnings[0],
			})
		}
	}

	// Rule 2: byte size against Gmail's ceilings.
	sizeInfo := EstimateSize(html)
	if !sizeInfo.WithinLimit {
		found = append(found, Issue{
			Severity: SeverityError,
			Title:    "Signature Too Large",
			Message:  fmt.Sprintf("Your signature is %.2fKB, exceeding Gmail's 10KB limit", sizeInfo.Kilobytes),
			Fix:      "Reduce image size, remove unnecessary content, or simplify styling",
		})
	} else if len(sizeInfo.Warnings) > 0 {
		found = append(found, Issue{
			Severity: SeverityWarning,
			Title:    "Size Warning",
			Message:  sizeInfo.Warnings[0],
		})
	}

	// Rule 3: embedded data URLs anywhere in the markup. Independent of
	// rule 1 because an embedded avatar can coexist with a valid primary
	// image elsewhere.
	if strings.Contains(html, "data:image") {
		found = append(found, Issue{
			Severity: SeverityError,
			Title:    "Data URL Detected",
			Message:  "Your signature contains embedded images (data URLs) which may be blocked by Gmail",
			Fix:      "Upload your images to get public URLs",
		})
	}

	// Rule 4: div elements break Outlook's Word rendering engine. This
	// rule exists to catch regressions in renderers, which are table-only.
	if strings.Contains(html, "<div") {
		found = append(found, Issue{
			Severity: SeverityWarning,
			Title:    "DIV Elements Detected",
			Message:  "Outlook may not render <div> elements correctly",
			Fix:      "Templates should use table-based layouts for maximum compatibility",
		})
	}

	// Rule 5: CSS classes alongside inline styles.
	if strings.Contains(html, "style=") && strings.Contains(html, "class=") {
		found = append(found, Issue{
			Severity: SeverityWarning,
			Title:    "CSS Classes Detected",
			Message:  "CSS classes may not work in email signatures",
			Fix:      "Use inline styles only",
		})
	}

	// Rule 6: modern CSS is unsupported across email clients.
	if modernCSSRe.MatchString(html) {
		found = append(found, Issue{
			Severity: SeverityError,
			Title:    "Modern CSS Detected",
			Message:  "Modern CSS (flexbox, grid, media queries) is not supported in email",
			Fix:      "Use table-based layouts with fixed widths",
		})
	}

	// Rule 7: positive feedback when everything passed.
	if len(found) == 0 {
		found = append(found, Issue{
			Severity: SeverityInfo,
			Title:    "All Good!",
			Message:  fmt.Sprintf("Your signature is %.2fKB and should work in all major email clients", sizeInfo.Kilobytes),
		})
	}

	return found
}

// Errors filters the issues down to error severity.
func Errors(issues []Issue) []Issue {
	return filter(issues, SeverityError)
}

// Warnings filters the issues down to warning severity.
func Warnings(issues []Issue) []Issue {
	return filter(issues, SeverityWarning)
}

func filter(issues []Issue, s Severity) []Issue {
	var out []Issue
	for _, i := range issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}
