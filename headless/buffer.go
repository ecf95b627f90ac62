// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"github.com/gogpu/gldraw/glcore"
)

type bufferObject struct {
	data  []byte
	usage glcore.Enum
}

type vertexArrayObject struct {
	element glcore.BufferID
	attribs map[uint32]*AttribPointer
}

// AttribPointer is the recorded state of one vertex attribute slot.
type AttribPointer struct {
	Index      uint32
	Buffer     glcore.BufferID
	Size       int32
	Type       glcore.Enum
	Normalized bool
	Integer    bool
	Stride     int32
	Offset     int
	Enabled    bool
}

// VertexArray is a snapshot of a vertex array object.
type VertexArray struct {
	ElementBuffer glcore.BufferID

	// Attributes is sorted by slot index.
	Attributes []AttribPointer
}

// Attribute returns the state of slot index.
func (v VertexArray) Attribute(index uint32) (AttribPointer, bool) {
	for _, a := range v.Attributes {
		if a.Index == index {
			return a, true
		}
	}
	return AttribPointer{}, false
}

// CreateBuffer creates an empty buffer object.
func (d *Device) CreateBuffer() glcore.BufferID {
	id := glcore.BufferID(d.allocID())
	d.buffers[id] = &bufferObject{}
	d.record(Call{Name: "CreateBuffer", Buffer: id})
	return id
}

// BindBuffer binds a buffer to a target. The element array binding belongs
// to the current vertex array, so binding one requires a vertex array.
func (d *Device) BindBuffer(target glcore.Enum, buffer glcore.BufferID) {
	d.record(Call{Name: "BindBuffer", Target: target, Buffer: buffer})
	if buffer != glcore.InvalidID {
		if _, ok := d.buffers[buffer]; !ok {
			d.setError(glcore.InvalidValue, "BindBuffer")
			return
		}
	}
	switch target {
	case glcore.ArrayBuffer:
		d.arrayBuffer = buffer
	case glcore.ElementArrayBuffer:
		vao, ok := d.arrays[d.currentArray]
		if !ok {
			d.setError(glcore.InvalidOperation, "BindBuffer")
			return
		}
		vao.element = buffer
	default:
		d.setError(glcore.InvalidEnum, "BindBuffer")
	}
}

// BufferData replaces the contents of the buffer bound to target.
func (d *Device) BufferData(target glcore.Enum, data []byte, usage glcore.Enum) {
	d.record(Call{Name: "BufferData", Target: target, Bytes: len(data)})
	var id glcore.BufferID
	switch target {
	case glcore.ArrayBuffer:
		id = d.arrayBuffer
	case glcore.ElementArrayBuffer:
		if vao, ok := d.arrays[d.currentArray]; ok {
			id = vao.element
		}
	default:
		d.setError(glcore.InvalidEnum, "BufferData")
		return
	}
	b, ok := d.buffers[id]
	if !ok {
		d.setError(glcore.InvalidOperation, "BufferData")
		return
	}
	b.data = append([]byte(nil), data...)
	b.usage = usage
	slogger().Debug("headless: buffer data", "buffer", id, "bytes", len(data))
}

// DeleteBuffer deletes a buffer object and detaches it from the array
// buffer binding and the current vertex array. Unknown names are ignored.
func (d *Device) DeleteBuffer(buffer glcore.BufferID) {
	if _, ok := d.buffers[buffer]; !ok {
		return
	}
	delete(d.buffers, buffer)
	if d.arrayBuffer == buffer {
		d.arrayBuffer = glcore.InvalidID
	}
	if vao, ok := d.arrays[d.currentArray]; ok && vao.element == buffer {
		vao.element = glcore.InvalidID
	}
	d.record(Call{Name: "DeleteBuffer", Buffer: buffer})
}

// BufferContents returns a copy of a buffer's bytes.
func (d *Device) BufferContents(buffer glcore.BufferID) ([]byte, bool) {
	b, ok := d.buffers[buffer]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b.data...), true
}

// BufferCount returns the number of buffer objects.
func (d *Device) BufferCount() int { return len(d.buffers) }

// CreateVertexArray creates an empty vertex array object.
func (d *Device) CreateVertexArray() glcore.VertexArrayID {
	id := glcore.VertexArrayID(d.allocID())
	d.arrays[id] = &vertexArrayObject{attribs: make(map[uint32]*AttribPointer)}
	d.record(Call{Name: "CreateVertexArray", VertexArray: id})
	return id
}

// BindVertexArray makes a vertex array current. Zero unbinds.
func (d *Device) BindVertexArray(vao glcore.VertexArrayID) {
	if vao != glcore.InvalidID {
		if _, ok := d.arrays[vao]; !ok {
			d.setError(glcore.InvalidOperation, "BindVertexArray")
			return
		}
	}
	d.currentArray = vao
	d.record(Call{Name: "BindVertexArray", VertexArray: vao})
}

func (d *Device) attribSlot(index uint32, op string) (*AttribPointer, bool) {
	vao, ok := d.arrays[d.currentArray]
	if !ok {
		d.setError(glcore.InvalidOperation, op)
		return nil, false
	}
	if int(index) >= d.maxAttribs {
		d.setError(glcore.InvalidValue, op)
		return nil, false
	}
	a, ok := vao.attribs[index]
	if !ok {
		a = &AttribPointer{Index: index, Size: 4, Type: glcore.Float}
		vao.attribs[index] = a
	}
	return a, true
}

// EnableVertexAttribArray enables slot index of the current vertex array.
func (d *Device) EnableVertexAttribArray(index uint32) {
	d.record(Call{Name: "EnableVertexAttribArray", Index: index})
	if a, ok := d.attribSlot(index, "EnableVertexAttribArray"); ok {
		a.Enabled = true
	}
}

// VertexAttribPointer points slot index at the buffer bound to ArrayBuffer.
func (d *Device) VertexAttribPointer(index uint32, size int32, typ glcore.Enum, normalized bool, stride int32, offset int) {
	d.record(Call{Name: "VertexAttribPointer", Index: index, Size: size, Type: typ, Stride: stride, Offset: offset, Buffer: d.arrayBuffer})
	d.attribPointer(index, size, typ, normalized, false, stride, offset, "VertexAttribPointer")
}

// VertexAttribIPointer is VertexAttribPointer for integer attributes.
func (d *Device) VertexAttribIPointer(index uint32, size int32, typ glcore.Enum, stride int32, offset int) {
	d.record(Call{Name: "VertexAttribIPointer", Index: index, Size: size, Type: typ, Stride: stride, Offset: offset, Buffer: d.arrayBuffer})
	switch typ {
	case glcore.Byte, glcore.UnsignedByte, glcore.Short, glcore.UnsignedShort, glcore.Int, glcore.UnsignedInt:
	default:
		d.setError(glcore.InvalidEnum, "VertexAttribIPointer")
		return
	}
	d.attribPointer(index, size, typ, false, true, stride, offset, "VertexAttribIPointer")
}

func (d *Device) attribPointer(index uint32, size int32, typ glcore.Enum, normalized, integer bool, stride int32, offset int, op string) {
	if size < 1 || size > 4 || stride < 0 || offset < 0 {
		d.setError(glcore.InvalidValue, op)
		return
	}
	if d.arrayBuffer == glcore.InvalidID {
		d.setError(glcore.InvalidOperation, op)
		return
	}
	a, ok := d.attribSlot(index, op)
	if !ok {
		return
	}
	a.Buffer = d.arrayBuffer
	a.Size = size
	a.Type = typ
	a.Normalized = normalized
	a.Integer = integer
	a.Stride = stride
	a.Offset = offset
}

// VertexArrayState returns a snapshot of a vertex array object.
func (d *Device) VertexArrayState(vao glcore.VertexArrayID) (VertexArray, bool) {
	v, ok := d.arrays[vao]
	if !ok {
		return VertexArray{}, false
	}
	out := VertexArray{ElementBuffer: v.element}
	for _, index := range sortedKeys(v.attribs) {
		out.Attributes = append(out.Attributes, *v.attribs[index])
	}
	return out, true
}

// DeleteVertexArray deletes a vertex array object. Deleting the current
// one binds zero. Unknown names are ignored.
func (d *Device) DeleteVertexArray(vao glcore.VertexArrayID) {
	if _, ok := d.arrays[vao]; !ok {
		return
	}
	delete(d.arrays, vao)
	if d.currentArray == vao {
		d.currentArray = glcore.InvalidID
	}
	d.record(Call{Name: "DeleteVertexArray", VertexArray: vao})
}

// VertexArrayCount returns the number of vertex array objects.
func (d *Device) VertexArrayCount() int { return len(d.arrays) }
