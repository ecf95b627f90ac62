package gldraw

import (
	"log/slog"

	"github.com/gogpu/gldraw/glcore"
)

// Context pairs a device with the defaults its builders use. It is the
// entry point for describing draw commands:
//
//	ctx := gldraw.NewContext(dev)
//	cmd, err := ctx.Draw().
//	    Vert(vertSrc).
//	    Frag(fragSrc).
//	    Attribute("position", gldraw.Vec2s{{-1, -1}, {1, -1}, {0, 1}}).
//	    Uniform("time", uniforms.Time()).
//	    Count(3).
//	    Finalize()
//
// Like the device it wraps, a Context must only be used from the goroutine
// that owns the GL context.
type Context struct {
	dev  glcore.Device
	opts contextOptions
}

// NewContext creates a Context for dev.
func NewContext(dev glcore.Device, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{dev: dev, opts: o}
	if o.logger != nil {
		propagateLogger(dev, o.logger)
	} else {
		trackDevice(dev)
		propagateLogger(dev, Logger())
	}
	return c
}

// Device returns the device the context draws with.
func (c *Context) Device() glcore.Device { return c.dev }

// Draw starts describing a new draw command.
func (c *Context) Draw() *Builder {
	return &Builder{
		dev:       c.dev,
		log:       c.logger(),
		usage:     c.opts.usage,
		prim:      c.opts.primitive,
		buffers:   make(map[string]Buffer),
		providers: make(map[string]Provider),
	}
}

func (c *Context) logger() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return Logger()
}
