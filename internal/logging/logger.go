// Package logging defines the structured logging interface used across the
// backend. The server wires in the slog implementation; tests substitute
// whatever is convenient.
package logging

import "context"

// Logger is a context-aware structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "Starting HTTP server", "address", addr)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
