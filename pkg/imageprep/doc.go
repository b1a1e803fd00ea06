// Package imageprep prepares avatar images for use in email signatures.
//
// Uploads pass through three stages: Validate checks the declared size,
// detected MIME type and pixel dimensions against upload limits; Optimize
// resizes the image to fit the avatar bounds and re-encodes it (JPEG by
// default) so the stored asset stays small; Pipeline ties both to an
// uploader and tracks the in-flight state.
//
// The pipeline enforces last-write-wins: each submission gets a sequence
// number, and when a newer submission lands before an older one finishes,
// the older result is discarded with ErrSuperseded. A failed upload rolls
// the state back to whatever it was before, so a broken file never
// clobbers a working avatar. The pipeline only ever exposes public URLs,
// never inline image data.
package imageprep
