// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the notes server and the terminal
// client. HTTP handlers pull their logger out of the request context; the
// rest of the code gets a *Logger passed in at construction.
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

// Logger embeds zerolog.Logger so callers use the zerolog API directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout. Every entry carries the role,
// a timestamp and the calling function name under "func".
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewClientLogger returns a logger for the terminal client. The terminal is
// owned by the UI, so entries go to a "logs" file next to the executable,
// or to stdout when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")

	l, err := NewFileLogger(role, logPath)
	if err != nil {
		return NewLogger(role)
	}
	return l
}

// NewFileLogger returns a logger appending JSON entries to the file at path.
func NewFileLogger(role, path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return newLogger(role, f), nil
}

func newLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields added to the copy stay off the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger the request middleware put on r.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when none is attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
