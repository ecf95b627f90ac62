package gldraw

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gldraw/glcore"
)

// Buffer is a vertex buffer created by UploadVertexData. It remembers the
// shape of the stream so the attribute binder can describe its layout.
type Buffer struct {
	ID glcore.BufferID

	// Scalar is the component kind of the stream.
	Scalar glcore.ScalarKind

	// Components is the number of scalars per vertex.
	Components int

	// Columns is the number of matrix columns per vertex, 1 for vector
	// streams. Zero leaves the layout unchecked beyond Components.
	Columns int

	// Count is the number of vertices.
	Count int
}

// Stride returns the byte distance between consecutive vertices.
func (b Buffer) Stride() int32 { return int32(b.Components * 4) }

// ElementBuffer is an index buffer created by UploadIndexData.
type ElementBuffer struct {
	ID glcore.BufferID

	// Count is the number of indices, the count passed to DrawElements.
	Count int
}

// Elements is index data for an indexed draw. Implementations are
// Indices, LineIndices and TriangleIndices.
type Elements interface {
	// Len returns the number of indices.
	Len() int

	// width returns the tuple width, or 0 for a flat index list.
	width() int
	appendTo(dst []uint32) []uint32
}

// Indices is a flat index list, valid for any primitive.
type Indices []uint32

// LineIndices groups indices by segment. It requires a line primitive.
type LineIndices [][2]uint32

// TriangleIndices groups indices by triangle. It requires a triangle
// primitive.
type TriangleIndices [][3]uint32

func (e Indices) Len() int         { return len(e) }
func (e LineIndices) Len() int     { return 2 * len(e) }
func (e TriangleIndices) Len() int { return 3 * len(e) }

func (Indices) width() int         { return 0 }
func (LineIndices) width() int     { return 2 }
func (TriangleIndices) width() int { return 3 }

func (e Indices) appendTo(dst []uint32) []uint32 { return append(dst, e...) }

func (e LineIndices) appendTo(dst []uint32) []uint32 {
	for i := range e {
		dst = append(dst, e[i][:]...)
	}
	return dst
}

func (e TriangleIndices) appendTo(dst []uint32) []uint32 {
	for i := range e {
		dst = append(dst, e[i][:]...)
	}
	return dst
}

// UploadVertexData flattens data into a new buffer object. The buffer is
// filled through ARRAY_BUFFER and unbound afterwards.
func UploadVertexData(dev glcore.Device, data VertexData, usage glcore.Enum) (Buffer, error) {
	if data == nil {
		return Buffer{}, ErrEmptyData
	}
	shape := data.Shape()
	if shape.Count == 0 {
		return Buffer{}, fmt.Errorf("%w: %s stream", ErrEmptyData, shapeBaseName(shape.Scalar, shape.Columns, shape.Rows))
	}
	raw := encodeValue(make([]byte, 0, 4*shape.Len()), data)

	id := dev.CreateBuffer()
	dev.BindBuffer(glcore.ArrayBuffer, id)
	dev.BufferData(glcore.ArrayBuffer, raw, usage)
	dev.BindBuffer(glcore.ArrayBuffer, glcore.InvalidID)

	Logger().Debug("gldraw: vertex data uploaded",
		"buffer", id, "shape", shape.String(), "bytes", len(raw))
	return Buffer{
		ID:         id,
		Scalar:     shape.Scalar,
		Components: shape.Arity(),
		Columns:    shape.Columns,
		Count:      shape.Count,
	}, nil
}

// UploadIndexData flattens elems into a new buffer object holding 32-bit
// indices. Grouped indices must agree with prim: pairs need a line
// primitive and triples a triangle primitive.
func UploadIndexData(dev glcore.Device, elems Elements, prim Primitive, usage glcore.Enum) (ElementBuffer, error) {
	if elems == nil || elems.Len() == 0 {
		return ElementBuffer{}, ErrEmptyData
	}
	switch w := elems.width(); {
	case w == 2 && !prim.IsLine(), w == 3 && !prim.IsTriangle():
		return ElementBuffer{}, fmt.Errorf("%w: %d-index groups with %s", ErrElementsMismatch, w, prim)
	}

	n := elems.Len()
	indices := elems.appendTo(make([]uint32, 0, n))
	raw := make([]byte, 0, 4*n)
	for _, i := range indices {
		raw = binary.LittleEndian.AppendUint32(raw, i)
	}

	// The element binding belongs to a vertex array, so the data goes in
	// through ARRAY_BUFFER and BindAttributes attaches it later.
	id := dev.CreateBuffer()
	dev.BindBuffer(glcore.ArrayBuffer, id)
	dev.BufferData(glcore.ArrayBuffer, raw, usage)
	dev.BindBuffer(glcore.ArrayBuffer, glcore.InvalidID)

	Logger().Debug("gldraw: index data uploaded", "buffer", id, "count", n, "primitive", prim.String())
	return ElementBuffer{ID: id, Count: n}, nil
}

// encodeValue appends the little-endian bytes of every scalar in v.
func encodeValue(dst []byte, v Value) []byte {
	switch v.Shape().Scalar {
	case glcore.ScalarFloat:
		for _, f := range appendFloats(nil, v) {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
	case glcore.ScalarInt:
		for _, i := range appendInts(nil, v) {
			dst = binary.LittleEndian.AppendUint32(dst, uint32(i))
		}
	case glcore.ScalarUint:
		for _, u := range appendUints(nil, v) {
			dst = binary.LittleEndian.AppendUint32(dst, u)
		}
	}
	return dst
}
