// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// recook-book.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer; request-scoped loggers are
// attached to a context with WithContext and recovered with FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFile is the file name used by NewFileLogger when no path is given.
const DefaultLogFile = "recookbook.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON lines
// to w.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name instead of file:line. level is
// parsed with zerolog.ParseLevel; an empty or unknown value means debug.
func NewLogger(role string, w io.Writer, level string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewFileLogger constructs a *Logger that appends to the file at path. The
// interactive UI owns the terminal, so client logs never go to stdout.
//
// An empty path resolves to DefaultLogFile next to the executable. If the
// file cannot be opened the logger falls back to os.Stderr.
func NewFileLogger(role, path, level string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultLogFile)
	}

	var out io.Writer
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		out = os.Stderr
	} else {
		out = logFile
	}

	return NewLogger(role, out, level)
}

// Nop returns a *Logger that discards all log output.
// It is intended for tests and other contexts where logging is noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and adds component=name.
func (l *Logger) GetChildLogger(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithContext returns a copy of ctx carrying l, so that code deeper in the
// call chain can recover it with FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by WithContext.
//
// If no logger has been attached to ctx, zerolog returns its default logger
// (or a disabled one), so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
