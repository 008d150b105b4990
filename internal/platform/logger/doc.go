// Package logger configures the process-wide slog JSON logger and carries a
// request-scoped logger (trace ID, user ID) through context.
package logger
