package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`(?i)^https?://`)

// NormalizeURL turns a possibly-bare user-entered URL into an absolute one.
// Empty or whitespace-only input yields "". Input that already carries an
// http:// or https:// scheme is returned unchanged, anything else is
// prefixed with https://. No further validation is performed; malformed
// hosts pass through.
func NormalizeURL(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if schemeRe.MatchString(trimmed) {
		return trimmed
	}
	return "https://" + trimmed
}

// StripScheme removes a leading http:// or https:// for display purposes,
// e.g. showing "example.com" as link text while the href keeps the scheme.
func StripScheme(s string) string {
	return schemeRe.ReplaceAllString(s, "")
}

// EscapeHTML escapes &, <, >, " and ' so the string is safe inside an HTML
// text node.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// EscapeAttr escapes a value for placement inside a double-quoted HTML
// attribute. html.EscapeString already covers the attribute-breaking
// characters, so this is an alias kept separate to mark intent at call
// sites: URLs are escaped too, not only text nodes.
func EscapeAttr(s string) string {
	return html.EscapeString(s)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// PlainText derives the plain-text clipboard fallback from signature HTML by
// collapsing whitespace runs into single spaces. Markup is left in place; the
// clipboard sink only needs a text/plain alternative, not a text extraction.
func PlainText(html string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(html, " "))
}
