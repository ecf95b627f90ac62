package gldraw

import (
	"slices"
	"testing"

	"github.com/gogpu/gldraw/glcore"
)

func TestShapeString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Float(1), "float"},
		{Vec3{}, "vec3"},
		{IVec2{}, "ivec2"},
		{UVec4{}, "uvec4"},
		{Uint(1), "uint"},
		{Mat4{}, "mat4"},
		{Mat2x3{}, "mat2x3"},
		{Mat4x3{}, "mat4x3"},
		{Vec4s{{}, {}, {}, {}}, "vec4[4]"},
		{Ints{1, 2}, "int[2]"},
		{Mat3s{{}}, "mat3[1]"},
	}
	for _, tt := range tests {
		if got := tt.v.Shape().String(); got != tt.want {
			t.Errorf("%T.Shape().String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestShapeArity(t *testing.T) {
	tests := []struct {
		v     Value
		arity int
		len   int
	}{
		{Float(1), 1, 1},
		{Vec2s{{}, {}, {}}, 2, 6},
		{Mat3s{{}, {}}, 9, 18},
		{Mat3x4s{{}}, 12, 12},
		{Mat4{}, 16, 16},
		{UVec3s{}, 3, 0},
	}
	for _, tt := range tests {
		s := tt.v.Shape()
		if s.Arity() != tt.arity || s.Len() != tt.len {
			t.Errorf("%T: Arity() = %d, Len() = %d, want %d, %d", tt.v, s.Arity(), s.Len(), tt.arity, tt.len)
		}
	}
}

func TestFlattenPreservesOrder(t *testing.T) {
	mats := Mat2x3s{{1, 2, 3, 4, 5, 6}, {7, 8, 9, 10, 11, 12}}
	if got := appendFloats(nil, mats); !slices.Equal(got, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}) {
		t.Errorf("appendFloats(Mat2x3s) = %v", got)
	}
	if got := appendInts([]int32{9}, IVec2s{{1, 2}, {3, 4}}); !slices.Equal(got, []int32{9, 1, 2, 3, 4}) {
		t.Errorf("appendInts(IVec2s) = %v", got)
	}
	if got := appendUints(nil, UVec3{7, 8, 9}); !slices.Equal(got, []uint32{7, 8, 9}) {
		t.Errorf("appendUints(UVec3) = %v", got)
	}
}

func TestFlattenIgnoresOtherKinds(t *testing.T) {
	if got := appendFloats(nil, Ints{1, 2}); len(got) != 0 {
		t.Errorf("appendFloats(Ints) = %v, want empty", got)
	}
	if got := appendInts(nil, Vec2{}); len(got) != 0 {
		t.Errorf("appendInts(Vec2) = %v, want empty", got)
	}
	if got := appendUints(nil, Float(1)); len(got) != 0 {
		t.Errorf("appendUints(Float) = %v, want empty", got)
	}
}

func TestFlattenMatchesShape(t *testing.T) {
	values := []Value{
		Float(1), Vec2{}, Vec3{}, Vec4{}, Int(1), IVec2{}, IVec3{}, IVec4{},
		Uint(1), UVec2{}, UVec3{}, UVec4{}, Mat2{}, Mat3{}, Mat4{},
		Mat2x3{}, Mat3x2{}, Mat2x4{}, Mat4x2{}, Mat3x4{}, Mat4x3{},
		Floats{1, 2}, Vec2s{{}}, Vec3s{{}}, Vec4s{{}}, Ints{1}, IVec2s{{}}, IVec3s{{}}, IVec4s{{}},
		Uints{1}, UVec2s{{}}, UVec3s{{}}, UVec4s{{}}, Mat2s{{}}, Mat3s{{}}, Mat4s{{}, {}},
		Mat2x3s{{}}, Mat3x2s{{}}, Mat2x4s{{}}, Mat4x2s{{}}, Mat3x4s{{}}, Mat4x3s{{}},
	}
	for _, v := range values {
		s := v.Shape()
		var n int
		switch s.Scalar {
		case glcore.ScalarFloat:
			n = len(appendFloats(nil, v))
		case glcore.ScalarInt:
			n = len(appendInts(nil, v))
		case glcore.ScalarUint:
			n = len(appendUints(nil, v))
		}
		if n != s.Len() {
			t.Errorf("%T flattens to %d scalars, shape says %d", v, n, s.Len())
		}
	}
}
