package glcore

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// ScalarKind is the component type of an attribute, uniform or host value.
type ScalarKind uint8

// Scalar kinds.
const (
	ScalarInvalid ScalarKind = iota
	ScalarFloat
	ScalarInt
	ScalarUint
	ScalarBool
	ScalarSampler
)

// String returns the GLSL spelling of the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarFloat:
		return "float"
	case ScalarInt:
		return "int"
	case ScalarUint:
		return "uint"
	case ScalarBool:
		return "bool"
	case ScalarSampler:
		return "sampler"
	default:
		return "invalid"
	}
}

// Type is the decomposed shape of a GL type enum.
//
// Vectors have one column and Rows components. Matrices follow GLSL matCxR
// naming: Columns columns of Rows components each.
type Type struct {
	Scalar  ScalarKind
	Columns int
	Rows    int
}

// Arity returns the number of scalar components, Columns*Rows.
func (t Type) Arity() int { return t.Columns * t.Rows }

// IsMatrix reports whether the type has more than one column.
func (t Type) IsMatrix() bool { return t.Columns > 1 }

// Valid reports whether the type was recognised.
func (t Type) Valid() bool { return t.Scalar != ScalarInvalid }

type typeEntry struct {
	typ  Type
	name string
}

var typeTable = map[Enum]typeEntry{
	Float:     {Type{ScalarFloat, 1, 1}, "float"},
	FloatVec2: {Type{ScalarFloat, 1, 2}, "vec2"},
	FloatVec3: {Type{ScalarFloat, 1, 3}, "vec3"},
	FloatVec4: {Type{ScalarFloat, 1, 4}, "vec4"},

	Int:     {Type{ScalarInt, 1, 1}, "int"},
	IntVec2: {Type{ScalarInt, 1, 2}, "ivec2"},
	IntVec3: {Type{ScalarInt, 1, 3}, "ivec3"},
	IntVec4: {Type{ScalarInt, 1, 4}, "ivec4"},

	UnsignedInt:     {Type{ScalarUint, 1, 1}, "uint"},
	UnsignedIntVec2: {Type{ScalarUint, 1, 2}, "uvec2"},
	UnsignedIntVec3: {Type{ScalarUint, 1, 3}, "uvec3"},
	UnsignedIntVec4: {Type{ScalarUint, 1, 4}, "uvec4"},

	Bool:     {Type{ScalarBool, 1, 1}, "bool"},
	BoolVec2: {Type{ScalarBool, 1, 2}, "bvec2"},
	BoolVec3: {Type{ScalarBool, 1, 3}, "bvec3"},
	BoolVec4: {Type{ScalarBool, 1, 4}, "bvec4"},

	FloatMat2:   {Type{ScalarFloat, 2, 2}, "mat2"},
	FloatMat3:   {Type{ScalarFloat, 3, 3}, "mat3"},
	FloatMat4:   {Type{ScalarFloat, 4, 4}, "mat4"},
	FloatMat2x3: {Type{ScalarFloat, 2, 3}, "mat2x3"},
	FloatMat2x4: {Type{ScalarFloat, 2, 4}, "mat2x4"},
	FloatMat3x2: {Type{ScalarFloat, 3, 2}, "mat3x2"},
	FloatMat3x4: {Type{ScalarFloat, 3, 4}, "mat3x4"},
	FloatMat4x2: {Type{ScalarFloat, 4, 2}, "mat4x2"},
	FloatMat4x3: {Type{ScalarFloat, 4, 3}, "mat4x3"},

	Sampler2D:       {Type{ScalarSampler, 1, 1}, "sampler2D"},
	Sampler3D:       {Type{ScalarSampler, 1, 1}, "sampler3D"},
	SamplerCube:     {Type{ScalarSampler, 1, 1}, "samplerCube"},
	Sampler2DShadow: {Type{ScalarSampler, 1, 1}, "sampler2DShadow"},
}

// TypeOf decomposes a GL type enum. Unknown enums return a Type whose Valid
// method reports false.
func TypeOf(e Enum) Type {
	return typeTable[e].typ
}

// TypeName returns the GLSL name of a type enum, or its hex value when the
// enum is not a known type.
func TypeName(e Enum) string {
	if t, ok := typeTable[e]; ok {
		return t.name
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}

// TypeByName returns the enum for a GLSL type name such as "vec3" or
// "mat4x3". The square aliases mat2x2, mat3x3 and mat4x4 are accepted.
func TypeByName(name string) (Enum, bool) {
	switch name {
	case "mat2x2":
		return FloatMat2, true
	case "mat3x3":
		return FloatMat3, true
	case "mat4x4":
		return FloatMat4, true
	}
	for e, t := range typeTable {
		if t.name == name {
			return e, true
		}
	}
	return 0, false
}

// ComponentType returns the GL component enum used when a stream of the
// given scalar kind is fed to an attribute pointer.
func ComponentType(k ScalarKind) Enum {
	switch k {
	case ScalarInt:
		return Int
	case ScalarUint:
		return UnsignedInt
	default:
		return Float
	}
}

// VertexFormat maps a scalar kind and a component count (1 to 4) onto the
// matching WebGPU vertex format, the vocabulary gldraw uses to describe
// attribute layouts.
func VertexFormat(k ScalarKind, components int) (gputypes.VertexFormat, bool) {
	switch k {
	case ScalarFloat:
		switch components {
		case 1:
			return gputypes.VertexFormatFloat32, true
		case 2:
			return gputypes.VertexFormatFloat32x2, true
		case 3:
			return gputypes.VertexFormatFloat32x3, true
		case 4:
			return gputypes.VertexFormatFloat32x4, true
		}
	case ScalarInt:
		switch components {
		case 1:
			return gputypes.VertexFormatSint32, true
		case 2:
			return gputypes.VertexFormatSint32x2, true
		case 3:
			return gputypes.VertexFormatSint32x3, true
		case 4:
			return gputypes.VertexFormatSint32x4, true
		}
	case ScalarUint:
		switch components {
		case 1:
			return gputypes.VertexFormatUint32, true
		case 2:
			return gputypes.VertexFormatUint32x2, true
		case 3:
			return gputypes.VertexFormatUint32x3, true
		case 4:
			return gputypes.VertexFormatUint32x4, true
		}
	}
	return 0, false
}

// FormatLayout is the inverse of VertexFormat: it returns the component
// count and GL component type of a 32-bit vertex format.
func FormatLayout(f gputypes.VertexFormat) (size int32, typ Enum, ok bool) {
	switch f {
	case gputypes.VertexFormatFloat32:
		return 1, Float, true
	case gputypes.VertexFormatFloat32x2:
		return 2, Float, true
	case gputypes.VertexFormatFloat32x3:
		return 3, Float, true
	case gputypes.VertexFormatFloat32x4:
		return 4, Float, true
	case gputypes.VertexFormatSint32:
		return 1, Int, true
	case gputypes.VertexFormatSint32x2:
		return 2, Int, true
	case gputypes.VertexFormatSint32x3:
		return 3, Int, true
	case gputypes.VertexFormatSint32x4:
		return 4, Int, true
	case gputypes.VertexFormatUint32:
		return 1, UnsignedInt, true
	case gputypes.VertexFormatUint32x2:
		return 2, UnsignedInt, true
	case gputypes.VertexFormatUint32x3:
		return 3, UnsignedInt, true
	case gputypes.VertexFormatUint32x4:
		return 4, UnsignedInt, true
	}
	return 0, 0, false
}
