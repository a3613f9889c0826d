package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is the leveled sink every package reports through. Calls are
// synchronous: a message is written before the call returns.
type Logger struct {
	l *slog.Logger
}

func New(out io.Writer, level slog.Leveler) *Logger {
	return &Logger{l: slog.New(NewHandlerTo(out, &slog.HandlerOptions{Level: level}))}
}

// FromSlog wraps an existing slog logger, e.g. one built on a test handler.
func FromSlog(l *slog.Logger) *Logger {
	return &Logger{l: l}
}

// Discard drops everything. Handy as a default in tests.
func Discard() *Logger {
	return &Logger{l: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// With returns a logger tagging every record with module, which the handler
// prints in brackets.
func (l *Logger) With(module string) *Logger {
	return &Logger{l: l.l.With("module", module)}
}

func (l *Logger) Slog() *slog.Logger {
	return l.l
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.l.Enabled(ctx, level) {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.l.Log(ctx, level, msg)
}

func (l *Logger) Trace(msg string, args ...any)    { l.log(LevelTrace, msg, args...) }
func (l *Logger) Debug(msg string, args ...any)    { l.log(slog.LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)     { l.log(slog.LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)     { l.log(slog.LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any)    { l.log(slog.LevelError, msg, args...) }
func (l *Logger) Critical(msg string, args ...any) { l.log(LevelCritical, msg, args...) }

// ParseLevel accepts the six level names, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
