// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/gldraw/driver"
	"github.com/gogpu/gldraw/glcore"
)

// init registers the OpenGL driver on package import.
func init() {
	driver.Register(driver.NameOpenGL, func() driver.Driver {
		return &Driver{}
	})
}

// Driver loads the GL entry points and hands out a Device. Init fails when
// no OpenGL context is current, letting the registry fall back to another
// driver.
type Driver struct {
	dev     *Device
	version string
}

// Name returns the driver identifier.
func (d *Driver) Name() string { return driver.NameOpenGL }

// Init loads the OpenGL 3.3 core functions for the current context.
func (d *Driver) Init() error {
	if d.dev != nil {
		return nil
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: opengl: %w", driver.ErrDriverNotAvailable, err)
	}
	v := gl.GetString(gl.VERSION)
	if v == nil {
		return fmt.Errorf("%w: opengl: no current context", driver.ErrDriverNotAvailable)
	}
	d.version = gl.GoStr(v)
	d.dev = New()
	slogger().Info("opengl: initialized", "version", d.version)
	return nil
}

// Version returns the GL_VERSION string reported at Init.
func (d *Driver) Version() string { return d.version }

// Device returns the device, or nil before Init.
func (d *Driver) Device() glcore.Device {
	if d.dev == nil {
		return nil
	}
	return d.dev
}

// Close drops the device. GL objects belong to the context and are freed
// with it.
func (d *Driver) Close() { d.dev = nil }
