// Package pg bootstraps the PostgreSQL layer for the signature service:
// a pgx/v5 connection pool with startup retry, goose schema migrations
// routed through the application logger, and small helpers for
// classifying common query errors.
package pg
