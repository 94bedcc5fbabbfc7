// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// card validator binaries and with helpers that recover request-scoped
// loggers from a context.
//
// The server logs JSON to stdout. The terminal client cannot share stdout
// with the UI, so it logs to a file instead.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is the file name used by NewClientLogger when no
// explicit path is configured. It is resolved next to the executable.
const DefaultClientLogFile = "logs"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger writing JSON to os.Stdout. Every entry
// carries the role label, a timestamp and the calling function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger that appends to path. An empty path
// means DefaultClientLogFile next to the running executable. If the file
// cannot be opened, output is discarded rather than written over the
// terminal UI.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultClientLogFile)
	}

	var out io.Writer = io.Discard
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel parses level (debug, info, warn, error) and applies it globally.
// Unknown values leave the current level untouched.
func SetLevel(level string) {
	if level == "" {
		return
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting it.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
