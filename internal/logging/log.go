// Package logging holds the slog logger shared by errv and its allocators.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// logger is the custom logger installed with SetLogger, nil when unset.
var logger atomic.Pointer[slog.Logger]

// defaultLogger caches slog.Default() with the component attribute so it is
// not rebuilt on every call. SetLogger clears it.
var defaultLogger atomic.Pointer[slog.Logger]

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := slog.Default().With("component", "errv")
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}

// SetLogger replaces the logger. A nil l restores the default, re-derived
// from slog.Default() on the next Logger call.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}
