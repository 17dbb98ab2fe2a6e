package ecap

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler discards all log records. Enabled returns false so
// callers skip record formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() { loggerPtr.Store(newNopLogger()) }

// Sets the logger used by ecap. By default the package produces no log
// output at all; pass a logger here if you want to see font selection
// failures and similar non-fatal notices. Passing nil restores the
// default silent behavior.
//
// The levels in use are [slog.LevelWarn] for degraded rendering (e.g.
// no usable font for a non-empty caption), [slog.LevelError] for
// invalid configuration that had to be ignored, and [slog.LevelDebug]
// for benign clamping notices like zero-sized overlay textures.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = newNopLogger() }
	loggerPtr.Store(logger)
}

// Returns the logger currently in use by ecap. See [SetLogger]().
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
