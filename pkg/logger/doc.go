// Package logger builds the application's slog loggers.
//
// All services log structured JSON to stdout. When a Sentry DSN is
// configured, warnings and errors are mirrored to Sentry through the
// official slog bridge. Context extractors inject request-scoped
// attributes (request ID) into every record.
package logger
