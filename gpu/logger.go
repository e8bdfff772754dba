// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled reports false so callers
// skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for the package. By default nothing
// is logged. Passing nil restores the default.
//
// Log levels:
//   - [slog.LevelDebug]: tolerated lookups (unknown attributes or uniforms), bind decisions
//   - [slog.LevelInfo]: context version, screen ready
//   - [slog.LevelWarn]: texture parameter fallbacks
//   - [slog.LevelError]: shader compiler and linker diagnostics
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
