// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging configures the structured logger shared by the
// plotting commands.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stderr, false, false)

func newLogger(w io.Writer, debug, json bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	if !json {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// InitTo configures the global logger to write to w.
// If debug is true, debug messages are logged.
// If json is true, records are written as JSON lines instead of the
// human-friendly console format.
func InitTo(w io.Writer, debug, json bool) {
	logger = newLogger(w, debug, json)
}

// WithTool returns a logger with the tool field set.
func WithTool(tool string) zerolog.Logger {
	return logger.With().Str("tool", tool).Logger()
}
