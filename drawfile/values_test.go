package drawfile

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gldraw"
)

func TestConstant(t *testing.T) {
	tests := []struct {
		typ  string
		raw  any
		want gldraw.Value
	}{
		{"float", 2, gldraw.Float(2)},
		{"", 0.25, gldraw.Float(0.25)},
		{"", []any{1, 2, 3}, gldraw.Vec3{1, 2, 3}},
		{"vec4", []any{0.5, 0.5, 0.5, 1.0}, gldraw.Vec4{0.5, 0.5, 0.5, 1}},
		{"float[3]", []any{1, 2, 3}, gldraw.Floats{1, 2, 3}},
		{"vec2[2]", []any{1, 2, 3, 4}, gldraw.Vec2s{{1, 2}, {3, 4}}},
		{"mat2", []any{1, 0, 0, 1}, gldraw.Mat2{1, 0, 0, 1}},
		{"mat2x3", []any{1, 2, 3, 4, 5, 6}, gldraw.Mat2x3{1, 2, 3, 4, 5, 6}},
		{"mat4x4", []any{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, gldraw.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}},
		{"int", int64(-4), gldraw.Int(-4)},
		{"ivec3", []any{1, -2, 3}, gldraw.IVec3{1, -2, 3}},
		{"int[2]", []any{7, 8}, gldraw.Ints{7, 8}},
		{"uint", 9, gldraw.Uint(9)},
		{"uvec2[1]", []any{1, 2}, gldraw.UVec2s{{1, 2}}},
		{"bool", true, gldraw.Int(1)},
		{"bvec2", []any{true, false}, gldraw.IVec2{1, 0}},
	}
	for _, tt := range tests {
		got, err := constant(tt.typ, tt.raw)
		if err != nil {
			t.Errorf("constant(%q, %v) error = %v", tt.typ, tt.raw, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("constant(%q, %v) = %#v, want %#v", tt.typ, tt.raw, got, tt.want)
		}
	}
}

func TestConstantErrors(t *testing.T) {
	tests := []struct {
		typ string
		raw any
	}{
		{"vec3", []any{1, 2}},
		{"float[2]", []any{1, 2, 3}},
		{"float[0]", []any{1}},
		{"float[x]", []any{1}},
		{"float[2", []any{1, 2}},
		{"quaternion", []any{1, 2, 3, 4}},
		{"sampler2D", 0},
		{"int", 1.5},
		{"uint", -1},
		{"", []any{1, 2, 3, 4, 5}},
		{"float", "one"},
		{"vec2", []any{1, "two"}},
	}
	for _, tt := range tests {
		if _, err := constant(tt.typ, tt.raw); !errors.Is(err, ErrInvalid) {
			t.Errorf("constant(%q, %v) error = %v, want ErrInvalid", tt.typ, tt.raw, err)
		}
	}
}

func TestVertexData(t *testing.T) {
	tests := []struct {
		attr Attribute
		want gldraw.VertexData
	}{
		{Attribute{Name: "a", Data: []float64{1, 2}}, gldraw.Floats{1, 2}},
		{Attribute{Name: "a", Size: 2, Data: []float64{1, 2, 3, 4}}, gldraw.Vec2s{{1, 2}, {3, 4}}},
		{Attribute{Name: "a", Type: "vec3", Data: []float64{1, 2, 3}}, gldraw.Vec3s{{1, 2, 3}}},
		{Attribute{Name: "a", Type: "ivec2", Data: []float64{1, 2, 3, 4}}, gldraw.IVec2s{{1, 2}, {3, 4}}},
		{Attribute{Name: "a", Type: "uint", Data: []float64{5, 6}}, gldraw.Uints{5, 6}},
		{Attribute{Name: "a", Type: "mat2", Data: []float64{1, 0, 0, 1}}, gldraw.Mat2s{{1, 0, 0, 1}}},
	}
	for _, tt := range tests {
		got, err := vertexData(tt.attr)
		if err != nil {
			t.Errorf("vertexData(%+v) error = %v", tt.attr, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("vertexData(%+v) = %#v, want %#v", tt.attr, got, tt.want)
		}
	}
}

func TestVertexDataErrors(t *testing.T) {
	tests := []Attribute{
		{Name: "a"},
		{Name: "a", Size: 5, Data: []float64{1, 2, 3, 4, 5}},
		{Name: "a", Size: 3, Data: []float64{1, 2}},
		{Name: "a", Type: "vec5", Data: []float64{1}},
		{Name: "a", Type: "int", Data: []float64{0.5}},
	}
	for _, a := range tests {
		if _, err := vertexData(a); !errors.Is(err, ErrInvalid) {
			t.Errorf("vertexData(%+v) error = %v, want ErrInvalid", a, err)
		}
	}
}

func TestElements(t *testing.T) {
	tests := []struct {
		raw     any
		want    gldraw.Elements
		wantErr bool
	}{
		{[]any{0, 1, 2}, gldraw.Indices{0, 1, 2}, false},
		{[]any{int64(3), int64(4)}, gldraw.Indices{3, 4}, false},
		{[]any{[]any{0, 1}, []any{1, 2}}, gldraw.LineIndices{{0, 1}, {1, 2}}, false},
		{[]any{[]any{0, 1, 2}, []any{2, 3, 0}}, gldraw.TriangleIndices{{0, 1, 2}, {2, 3, 0}}, false},
		{[]any{[]any{0, 1, 2, 3}}, nil, true},
		{[]any{[]any{0, 1, 2}, []any{2, 3}}, nil, true},
		{[]any{[]any{0, 1}, 2}, nil, true},
		{[]any{-1}, nil, true},
		{[]any{1.5}, nil, true},
		{[]any{}, nil, true},
		{"0 1 2", nil, true},
	}
	for _, tt := range tests {
		got, err := elements(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("elements(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("elements(%v) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}
