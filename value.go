package gldraw

import (
	"fmt"

	"github.com/gogpu/gldraw/glcore"
)

// Shape describes the layout of a host value: its scalar kind, its column
// and row counts (GLSL matCxR convention, vectors have one column), and how
// many elements it holds.
type Shape struct {
	Scalar  glcore.ScalarKind
	Columns int
	Rows    int

	// Count is the number of elements. It is 1 for single values.
	Count int

	// Array reports whether the value is a slice variant.
	Array bool
}

// Arity returns the number of scalars in one element, Columns*Rows.
func (s Shape) Arity() int { return s.Columns * s.Rows }

// Len returns the total number of scalars, Arity*Count.
func (s Shape) Len() int { return s.Arity() * s.Count }

// String returns the GLSL spelling of the shape, e.g. "vec3" or "mat4[2]".
func (s Shape) String() string {
	name := shapeBaseName(s.Scalar, s.Columns, s.Rows)
	if s.Array {
		return fmt.Sprintf("%s[%d]", name, s.Count)
	}
	return name
}

func shapeBaseName(k glcore.ScalarKind, columns, rows int) string {
	switch {
	case columns > 1 && columns == rows:
		return fmt.Sprintf("mat%d", columns)
	case columns > 1:
		return fmt.Sprintf("mat%dx%d", columns, rows)
	case rows == 1:
		return k.String()
	}
	prefix := ""
	switch k {
	case glcore.ScalarInt:
		prefix = "i"
	case glcore.ScalarUint:
		prefix = "u"
	case glcore.ScalarBool:
		prefix = "b"
	}
	return fmt.Sprintf("%svec%d", prefix, rows)
}

// Value is a host value that can be pushed to a uniform. The set of
// implementations is closed: the single-value types below and their slice
// forms. Matrices are column-major.
type Value interface {
	Shape() Shape
	isValue()
}

// VertexData is a slice variant of Value that can be uploaded as a vertex
// stream. Each element is one vertex.
type VertexData interface {
	Value
	isVertexData()
}

// Single values.
type (
	Float  float32
	Vec2   [2]float32
	Vec3   [3]float32
	Vec4   [4]float32
	Int    int32
	IVec2  [2]int32
	IVec3  [3]int32
	IVec4  [4]int32
	Uint   uint32
	UVec2  [2]uint32
	UVec3  [3]uint32
	UVec4  [4]uint32
	Mat2   [4]float32
	Mat3   [9]float32
	Mat4   [16]float32
	Mat2x3 [6]float32
	Mat3x2 [6]float32
	Mat2x4 [8]float32
	Mat4x2 [8]float32
	Mat3x4 [12]float32
	Mat4x3 [12]float32
)

// Slice forms. As uniforms they set arrays; as VertexData they are streams.
type (
	Floats  []float32
	Vec2s   []Vec2
	Vec3s   []Vec3
	Vec4s   []Vec4
	Ints    []int32
	IVec2s  []IVec2
	IVec3s  []IVec3
	IVec4s  []IVec4
	Uints   []uint32
	UVec2s  []UVec2
	UVec3s  []UVec3
	UVec4s  []UVec4
	Mat2s   []Mat2
	Mat3s   []Mat3
	Mat4s   []Mat4
	Mat2x3s []Mat2x3
	Mat3x2s []Mat3x2
	Mat2x4s []Mat2x4
	Mat4x2s []Mat4x2
	Mat3x4s []Mat3x4
	Mat4x3s []Mat4x3
)

func (Float) Shape() Shape { return Shape{glcore.ScalarFloat, 1, 1, 1, false} }
func (Vec2) Shape() Shape { return Shape{glcore.ScalarFloat, 1, 2, 1, false} }
func (Vec3) Shape() Shape { return Shape{glcore.ScalarFloat, 1, 3, 1, false} }
func (Vec4) Shape() Shape { return Shape{glcore.ScalarFloat, 1, 4, 1, false} }
func (Int) Shape() Shape { return Shape{glcore.ScalarInt, 1, 1, 1, false} }
func (IVec2) Shape() Shape { return Shape{glcore.ScalarInt, 1, 2, 1, false} }
func (IVec3) Shape() Shape { return Shape{glcore.ScalarInt, 1, 3, 1, false} }
func (IVec4) Shape() Shape { return Shape{glcore.ScalarInt, 1, 4, 1, false} }
func (Uint) Shape() Shape { return Shape{glcore.ScalarUint, 1, 1, 1, false} }
func (UVec2) Shape() Shape { return Shape{glcore.ScalarUint, 1, 2, 1, false} }
func (UVec3) Shape() Shape { return Shape{glcore.ScalarUint, 1, 3, 1, false} }
func (UVec4) Shape() Shape { return Shape{glcore.ScalarUint, 1, 4, 1, false} }
func (Mat2) Shape() Shape { return Shape{glcore.ScalarFloat, 2, 2, 1, false} }
func (Mat3) Shape() Shape { return Shape{glcore.ScalarFloat, 3, 3, 1, false} }
func (Mat4) Shape() Shape { return Shape{glcore.ScalarFloat, 4, 4, 1, false} }
func (Mat2x3) Shape() Shape { return Shape{glcore.ScalarFloat, 2, 3, 1, false} }
func (Mat3x2) Shape() Shape { return Shape{glcore.ScalarFloat, 3, 2, 1, false} }
func (Mat2x4) Shape() Shape { return Shape{glcore.ScalarFloat, 2, 4, 1, false} }
func (Mat4x2) Shape() Shape { return Shape{glcore.ScalarFloat, 4, 2, 1, false} }
func (Mat3x4) Shape() Shape { return Shape{glcore.ScalarFloat, 3, 4, 1, false} }
func (Mat4x3) Shape() Shape { return Shape{glcore.ScalarFloat, 4, 3, 1, false} }

func (v Floats) Shape() Shape { return Shape{glcore.ScalarFloat, 1, 1, len(v), true} }
func (v Vec2s) Shape() Shape { return Shape{glcore.ScalarFloat, 1, 2, len(v), true} }
func (v Vec3s) Shape() Shape { return Shape{glcore.ScalarFloat, 1, 3, len(v), true} }
func (v Vec4s) Shape() Shape { return Shape{glcore.ScalarFloat, 1, 4, len(v), true} }
func (v Ints) Shape() Shape { return Shape{glcore.ScalarInt, 1, 1, len(v), true} }
func (v IVec2s) Shape() Shape { return Shape{glcore.ScalarInt, 1, 2, len(v), true} }
func (v IVec3s) Shape() Shape { return Shape{glcore.ScalarInt, 1, 3, len(v), true} }
func (v IVec4s) Shape() Shape { return Shape{glcore.ScalarInt, 1, 4, len(v), true} }
func (v Uints) Shape() Shape { return Shape{glcore.ScalarUint, 1, 1, len(v), true} }
func (v UVec2s) Shape() Shape { return Shape{glcore.ScalarUint, 1, 2, len(v), true} }
func (v UVec3s) Shape() Shape { return Shape{glcore.ScalarUint, 1, 3, len(v), true} }
func (v UVec4s) Shape() Shape { return Shape{glcore.ScalarUint, 1, 4, len(v), true} }
func (v Mat2s) Shape() Shape { return Shape{glcore.ScalarFloat, 2, 2, len(v), true} }
func (v Mat3s) Shape() Shape { return Shape{glcore.ScalarFloat, 3, 3, len(v), true} }
func (v Mat4s) Shape() Shape { return Shape{glcore.ScalarFloat, 4, 4, len(v), true} }
func (v Mat2x3s) Shape() Shape { return Shape{glcore.ScalarFloat, 2, 3, len(v), true} }
func (v Mat3x2s) Shape() Shape { return Shape{glcore.ScalarFloat, 3, 2, len(v), true} }
func (v Mat2x4s) Shape() Shape { return Shape{glcore.ScalarFloat, 2, 4, len(v), true} }
func (v Mat4x2s) Shape() Shape { return Shape{glcore.ScalarFloat, 4, 2, len(v), true} }
func (v Mat3x4s) Shape() Shape { return Shape{glcore.ScalarFloat, 3, 4, len(v), true} }
func (v Mat4x3s) Shape() Shape { return Shape{glcore.ScalarFloat, 4, 3, len(v), true} }

func (Float) isValue() {}
func (Vec2) isValue() {}
func (Vec3) isValue() {}
func (Vec4) isValue() {}
func (Int) isValue() {}
func (IVec2) isValue() {}
func (IVec3) isValue() {}
func (IVec4) isValue() {}
func (Uint) isValue() {}
func (UVec2) isValue() {}
func (UVec3) isValue() {}
func (UVec4) isValue() {}
func (Mat2) isValue() {}
func (Mat3) isValue() {}
func (Mat4) isValue() {}
func (Mat2x3) isValue() {}
func (Mat3x2) isValue() {}
func (Mat2x4) isValue() {}
func (Mat4x2) isValue() {}
func (Mat3x4) isValue() {}
func (Mat4x3) isValue() {}
func (Floats) isValue() {}
func (Vec2s) isValue() {}
func (Vec3s) isValue() {}
func (Vec4s) isValue() {}
func (Ints) isValue() {}
func (IVec2s) isValue() {}
func (IVec3s) isValue() {}
func (IVec4s) isValue() {}
func (Uints) isValue() {}
func (UVec2s) isValue() {}
func (UVec3s) isValue() {}
func (UVec4s) isValue() {}
func (Mat2s) isValue() {}
func (Mat3s) isValue() {}
func (Mat4s) isValue() {}
func (Mat2x3s) isValue() {}
func (Mat3x2s) isValue() {}
func (Mat2x4s) isValue() {}
func (Mat4x2s) isValue() {}
func (Mat3x4s) isValue() {}
func (Mat4x3s) isValue() {}

func (Floats) isVertexData() {}
func (Vec2s) isVertexData() {}
func (Vec3s) isVertexData() {}
func (Vec4s) isVertexData() {}
func (Ints) isVertexData() {}
func (IVec2s) isVertexData() {}
func (IVec3s) isVertexData() {}
func (IVec4s) isVertexData() {}
func (Uints) isVertexData() {}
func (UVec2s) isVertexData() {}
func (UVec3s) isVertexData() {}
func (UVec4s) isVertexData() {}
func (Mat2s) isVertexData() {}
func (Mat3s) isVertexData() {}
func (Mat4s) isVertexData() {}
func (Mat2x3s) isVertexData() {}
func (Mat3x2s) isVertexData() {}
func (Mat2x4s) isVertexData() {}
func (Mat4x2s) isVertexData() {}
func (Mat3x4s) isVertexData() {}
func (Mat4x3s) isVertexData() {}
