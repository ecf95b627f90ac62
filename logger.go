package gldraw

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gldraw/glcore"
)

// nopHandler is a slog.Handler that discards all records. Enabled returns
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

var (
	deviceMu sync.RWMutex
	device   glcore.Device
)

// SetLogger configures the logger for gldraw and its sub-packages.
// By default gldraw produces no log output. Pass nil to restore silence.
//
// The logger is also handed to the device of the most recently created
// Context when that device accepts one.
//
// Log levels used by gldraw:
//   - [slog.LevelDebug]: reflection results, skipped names, uploads
//   - [slog.LevelInfo]: program link, driver selection
//   - [slog.LevelWarn]: GL errors reported by the frame loop
//
// Example:
//
//	gldraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	deviceMu.RLock()
	d := device
	deviceMu.RUnlock()
	if d != nil {
		propagateLogger(d, l)
	}
}

// Logger returns the current logger. Sub-packages call it to share the
// same configuration. Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by devices that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

func propagateLogger(d glcore.Device, l *slog.Logger) {
	if ls, ok := d.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

// trackDevice remembers d as the target of later SetLogger calls.
func trackDevice(d glcore.Device) {
	deviceMu.Lock()
	device = d
	deviceMu.Unlock()
}
