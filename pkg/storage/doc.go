// Package storage persists optimized avatar images in S3 (or an
// S3-compatible service) and hands out the public URLs that end up in
// rendered signatures.
//
// Uploads are keyed by date plus a random id, uploads/YYYY/MM/DD/<id>.<ext>,
// so repeated uploads never collide or overwrite each other. Direct
// browser uploads go through PresignPut, which returns a time-limited PUT
// URL together with the public URL the object will have once uploaded.
//
// The storage also doubles as the icon source: IconURLs builds candidate
// icon URLs under a bucket prefix of the public base, which the icons
// resolver probes at startup.
package storage
