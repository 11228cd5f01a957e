// Package logger adapts log/slog to the ports.Logger interface.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
)

// Logger writes structured text logs. Without verbose only errors are emitted.
type Logger struct {
	log *slog.Logger
}

// New creates a Logger writing to w.
func New(w io.Writer, verbose bool) *Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{log: slog.New(handler)}
}

// NewStd creates a Logger on stderr.
func NewStd(verbose bool) *Logger {
	return New(os.Stderr, verbose)
}

// Discard returns a logger that drops all output. Useful for tests.
func Discard() *Logger {
	return New(io.Discard, false)
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, attrs(fields)...)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, attrs(fields)...)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, attrs(fields)...)
}

func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	l.log.Error(msg, args...)
}

// attrs converts fields to slog attributes in key order so output is stable.
func attrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
