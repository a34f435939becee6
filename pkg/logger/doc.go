// Package logger provides a thin factory around Go's slog package with
// functional options for level, format and output. The tracker logs only
// operational noise: storage write failures and event emission traces, all
// at debug level, so a default logger stays silent in production.
package logger
