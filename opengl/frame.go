// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import "github.com/go-gl/gl/v3.3-core/gl"

// Frame setup calls. They are outside glcore.Device because commands never
// issue them; the frame loop does.

// Viewport sets the viewport to the whole framebuffer.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer to the given color.
func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
