package gldraw

import (
	"log/slog"

	"github.com/gogpu/gldraw/glcore"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx := gldraw.NewContext(dev,
//	    gldraw.WithBufferUsage(glcore.DynamicDraw),
//	    gldraw.WithPrimitive(gldraw.Lines))
type ContextOption func(*contextOptions)

type contextOptions struct {
	usage     glcore.Enum
	primitive Primitive
	logger    *slog.Logger
}

func defaultOptions() contextOptions {
	return contextOptions{
		usage:     glcore.StaticDraw,
		primitive: Triangles,
	}
}

// WithBufferUsage sets the usage hint passed to BufferData for every buffer
// the context's builders upload. The default is glcore.StaticDraw.
func WithBufferUsage(usage glcore.Enum) ContextOption {
	return func(o *contextOptions) {
		o.usage = usage
	}
}

// WithPrimitive sets the primitive new builders start with. The default is
// Triangles.
func WithPrimitive(p Primitive) ContextOption {
	return func(o *contextOptions) {
		o.primitive = p
	}
}

// WithLogger gives the context its own logger instead of the package
// logger. It is used by the context's builders and handed to the device.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}
