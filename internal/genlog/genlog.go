// Package genlog is the structured logging sink used by cmd/gocodegen.
// Package gen itself never logs — generation is
// silent and synchronous — so this wrapper exists only for the ambient
// CLI/loader layer built on top of it.
package genlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger behind a small, call-site-friendly API
// so the rest of this repo depends on this package, not on zerolog
// directly.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger writing JSON lines to w at the given minimum
// level.
func New(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Default returns a Logger writing human-readable output to stderr at
// info level, matching the corpus's CLI logging texture.
func Default() *Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return &Logger{zl: zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()}
}

// Field is one key/value pair attached to a log event.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Info logs msg at info level with the given fields.
func (l *Logger) Info(msg string, fields ...Field) {
	l.emit(l.zl.Info(), msg, fields)
}

// Warn logs msg at warn level with the given fields.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.emit(l.zl.Warn(), msg, fields)
}

// Error logs msg at error level, attaching err if non-nil.
func (l *Logger) Error(msg string, err error, fields ...Field) {
	ev := l.zl.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	l.emit(ev, msg, fields)
}

func (l *Logger) emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}
