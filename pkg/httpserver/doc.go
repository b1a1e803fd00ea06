// Package httpserver wraps net/http's server with graceful shutdown,
// env-driven configuration and a health endpoint, so the signature
// service's entrypoint stays a few lines of composition.
package httpserver
