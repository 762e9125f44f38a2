package core

import (
	"context"
	"sync/atomic"

	"github.com/go-logr/logr"
)

type OptionKey string

const LoggerOptionKey OptionKey = "logger_options"

type LoggerOptions struct {
	Logger logr.Logger
}

var defaultLogger atomic.Pointer[logr.Logger]

func init() {
	l := logr.Discard()
	defaultLogger.Store(&l)
}

// SetLogger replaces the package-wide logger. Passing the zero logr.Logger
// restores the discarding default.
func SetLogger(l logr.Logger) {
	if l.GetSink() == nil {
		l = logr.Discard()
	}
	defaultLogger.Store(&l)
}

func Logger() logr.Logger {
	return *defaultLogger.Load()
}

func WithLogger(ctx context.Context, l logr.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: l})
}

// LoggerFrom returns the logger carried by ctx, falling back to Logger.
func LoggerFrom(ctx context.Context) logr.Logger {
	if ctx == nil {
		return Logger()
	}
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok {
		return options.Logger
	}
	return Logger()
}
