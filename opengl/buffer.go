// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/gldraw/glcore"
)

// CreateBuffer implements glcore.Device.
func (d *Device) CreateBuffer() glcore.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return glcore.BufferID(id)
}

// DeleteBuffer implements glcore.Device.
func (d *Device) DeleteBuffer(buffer glcore.BufferID) {
	id := uint32(buffer)
	gl.DeleteBuffers(1, &id)
}

// BindBuffer implements glcore.Device.
func (d *Device) BindBuffer(target glcore.Enum, buffer glcore.BufferID) {
	gl.BindBuffer(uint32(target), uint32(buffer))
}

// BufferData implements glcore.Device. Empty data allocates a zero-sized
// store.
func (d *Device) BufferData(target glcore.Enum, data []byte, usage glcore.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
	slogger().Debug("opengl: buffer data", "target", uint32(target), "bytes", len(data))
}

// CreateVertexArray implements glcore.Device.
func (d *Device) CreateVertexArray() glcore.VertexArrayID {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return glcore.VertexArrayID(id)
}

// BindVertexArray implements glcore.Device.
func (d *Device) BindVertexArray(vao glcore.VertexArrayID) {
	gl.BindVertexArray(uint32(vao))
}

// DeleteVertexArray implements glcore.Device.
func (d *Device) DeleteVertexArray(vao glcore.VertexArrayID) {
	id := uint32(vao)
	gl.DeleteVertexArrays(1, &id)
}

// EnableVertexAttribArray implements glcore.Device.
func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// VertexAttribPointer implements glcore.Device.
func (d *Device) VertexAttribPointer(index uint32, size int32, typ glcore.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), normalized, stride, uintptr(offset))
}

// VertexAttribIPointer implements glcore.Device for int and uint attributes.
func (d *Device) VertexAttribIPointer(index uint32, size int32, typ glcore.Enum, stride int32, offset int) {
	gl.VertexAttribIPointerWithOffset(index, size, uint32(typ), stride, uintptr(offset))
}

// DrawArrays implements glcore.Device.
func (d *Device) DrawArrays(mode glcore.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

// DrawElements implements glcore.Device.
func (d *Device) DrawElements(mode glcore.Enum, count int32, typ glcore.Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(typ), uintptr(offset))
}

// GetError implements glcore.Device. It returns one error flag per call,
// like glGetError.
func (d *Device) GetError() glcore.Enum {
	return glcore.Enum(gl.GetError())
}
