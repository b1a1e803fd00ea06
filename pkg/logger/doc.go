// Package logger builds the slog.Logger used across the signature service.
//
// New applies functional options over production-safe defaults (JSON
// output at info level). NewFromConfig wires the same factory to
// environment variables so deployments switch format and level without
// code changes. The returned logger injects request-scoped attributes
// from context via registered extractors, so handlers never pass request
// ids around by hand.
package logger
