// Package sanitize provides the text transformations used when interpolating
// user-entered contact data into signature HTML.
//
// Every contact field placed into a text node goes through EscapeHTML, and
// every URL placed into an href or src attribute goes through NormalizeURL
// followed by EscapeAttr. The functions are pure and allocation-light so they
// can run on every keystroke of a live preview.
//
// # Usage
//
//	href := sanitize.EscapeAttr(sanitize.NormalizeURL(contact.Website))
//	text := sanitize.EscapeHTML(contact.FullName)
//
// NormalizeURL is idempotent: normalizing an already-normalized URL returns
// the same value.
package sanitize
