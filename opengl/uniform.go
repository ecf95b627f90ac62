// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/gldraw/glcore"
)

// Uniformfv implements glcore.Device, choosing glUniform1fv..4fv by
// components.
func (d *Device) Uniformfv(loc glcore.Location, components int, v []float32) {
	if len(v) == 0 || components < 1 {
		return
	}
	n := int32(len(v) / components)
	switch components {
	case 1:
		gl.Uniform1fv(int32(loc), n, &v[0])
	case 2:
		gl.Uniform2fv(int32(loc), n, &v[0])
	case 3:
		gl.Uniform3fv(int32(loc), n, &v[0])
	case 4:
		gl.Uniform4fv(int32(loc), n, &v[0])
	}
}

// Uniformiv implements glcore.Device.
func (d *Device) Uniformiv(loc glcore.Location, components int, v []int32) {
	if len(v) == 0 || components < 1 {
		return
	}
	n := int32(len(v) / components)
	switch components {
	case 1:
		gl.Uniform1iv(int32(loc), n, &v[0])
	case 2:
		gl.Uniform2iv(int32(loc), n, &v[0])
	case 3:
		gl.Uniform3iv(int32(loc), n, &v[0])
	case 4:
		gl.Uniform4iv(int32(loc), n, &v[0])
	}
}

// Uniformuiv implements glcore.Device.
func (d *Device) Uniformuiv(loc glcore.Location, components int, v []uint32) {
	if len(v) == 0 || components < 1 {
		return
	}
	n := int32(len(v) / components)
	switch components {
	case 1:
		gl.Uniform1uiv(int32(loc), n, &v[0])
	case 2:
		gl.Uniform2uiv(int32(loc), n, &v[0])
	case 3:
		gl.Uniform3uiv(int32(loc), n, &v[0])
	case 4:
		gl.Uniform4uiv(int32(loc), n, &v[0])
	}
}

// UniformMatrixfv uploads column-major data, so transpose is always false.
func (d *Device) UniformMatrixfv(loc glcore.Location, columns, rows int, v []float32) {
	arity := columns * rows
	if len(v) == 0 || arity == 0 {
		return
	}
	n := int32(len(v) / arity)
	l, p := int32(loc), &v[0]
	switch {
	case columns == 2 && rows == 2:
		gl.UniformMatrix2fv(l, n, false, p)
	case columns == 3 && rows == 3:
		gl.UniformMatrix3fv(l, n, false, p)
	case columns == 4 && rows == 4:
		gl.UniformMatrix4fv(l, n, false, p)
	case columns == 2 && rows == 3:
		gl.UniformMatrix2x3fv(l, n, false, p)
	case columns == 3 && rows == 2:
		gl.UniformMatrix3x2fv(l, n, false, p)
	case columns == 2 && rows == 4:
		gl.UniformMatrix2x4fv(l, n, false, p)
	case columns == 4 && rows == 2:
		gl.UniformMatrix4x2fv(l, n, false, p)
	case columns == 3 && rows == 4:
		gl.UniformMatrix3x4fv(l, n, false, p)
	case columns == 4 && rows == 3:
		gl.UniformMatrix4x3fv(l, n, false, p)
	}
}
