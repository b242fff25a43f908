package latex

import (
	"io"
	"log/slog"
)

type Option func(*Builder)

// WithLogger sets logger for state transitions and rejected operations, messages are logged with debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.log = logger
		}
	}
}

// WithIndent sets string written once per nesting level in front of each line of an environment body.
func WithIndent(indent string) Option {
	return func(b *Builder) {
		b.indent = indent
	}
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
