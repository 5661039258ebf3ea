package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/fatih/color"
)

type contextKey struct{}

var loggerKey = contextKey{}

// Options controls how the default logger renders records.
type Options struct {
	// Verbose enables info records (the per-discussion decision lines).
	Verbose bool
	// Debug enables debug records and source locations, as with RUNNER_DEBUG=1.
	Debug bool
	// Actions renders warnings, errors and debug records as GitHub workflow commands.
	Actions bool
}

// Initialize installs the pretty handler as the slog default and returns the logger.
func Initialize(w io.Writer, o Options) *slog.Logger {
	level := slog.LevelWarn

	if o.Debug {
		level = slog.LevelDebug
	} else if o.Verbose {
		level = slog.LevelInfo
	}

	if o.Actions {
		// The runner log viewer renders ANSI even though stdout is not a TTY.
		color.NoColor = false
	}

	handler := NewPrettyHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: o.Debug,
	}, o.Actions)

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func With(ctx context.Context, args ...any) context.Context {
	l := FromContext(ctx).With(args...)
	return WithLogger(ctx, l)
}

func Debug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	FromContext(ctx).Error(msg, args...)
}
