package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default if there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// sessionLogger returns the logger interactive front ends hand to the
// engine. Terminal output belongs to the game, so logs go to path when it
// is set and are dropped otherwise. The returned close function is never
// nil.
func sessionLogger(path string, level log.Level) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f, level), f.Close, nil
}
