// Package compat statically analyzes generated signature HTML against known
// email-client rendering limits and reports a ranked list of issues.
//
// Check runs a fixed set of independent rules (image URL validity, byte
// size, embedded data URLs, structural HTML, CSS usage, modern CSS) and
// never short-circuits: one signature can surface several issues at once,
// across severities. When nothing is wrong it emits a single informational
// issue with the measured size. Everything here is pure and deterministic,
// so it can run on every keystroke of a live preview.
//
// The size ceilings mirror Gmail's observed behavior: signatures above
// roughly 10 KiB get truncated, so that is the hard limit, with 8 KiB as
// the recommended buffer.
package compat
