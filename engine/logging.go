package engine

import (
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for registration and function failures.
// A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) { current.Store(l) }

func logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return slog.Default()
}
