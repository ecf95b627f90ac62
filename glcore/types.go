package glcore

// Object handles
//
// These opaque handles name GL objects. Each device implementation maps them
// to its own objects; for OpenGL they are the driver-assigned names.

// ShaderID is an opaque handle to a compiled shader object.
type ShaderID uint32

// ProgramID is an opaque handle to a linked program object.
type ProgramID uint32

// BufferID is an opaque handle to a buffer object.
type BufferID uint32

// VertexArrayID is an opaque handle to a vertex array object.
type VertexArrayID uint32

// InvalidID is the zero value, representing an invalid/null object.
const InvalidID = 0

// Location is a uniform location. Negative values mean the name is not an
// active uniform of the program.
type Location int32

// NoLocation is returned for names that are not active.
const NoLocation Location = -1

// Enum is a GL enumerant. Values match the OpenGL headers so that the
// opengl driver can pass them through unchanged.
type Enum uint32

// Shader stages.
const (
	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
)

// Buffer targets and usage hints.
const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893

	StreamDraw  Enum = 0x88E0
	StaticDraw  Enum = 0x88E4
	DynamicDraw Enum = 0x88E8
)

// Draw modes.
const (
	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	LineLoop      Enum = 0x0002
	LineStrip     Enum = 0x0003
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
	TriangleFan   Enum = 0x0006
)

// Error codes returned by GetError.
const (
	NoError          Enum = 0
	InvalidEnum      Enum = 0x0500
	InvalidValue     Enum = 0x0501
	InvalidOperation Enum = 0x0502
	OutOfMemory      Enum = 0x0505
)

// Scalar component types.
const (
	Byte          Enum = 0x1400
	UnsignedByte  Enum = 0x1401
	Short         Enum = 0x1402
	UnsignedShort Enum = 0x1403
	Int           Enum = 0x1404
	UnsignedInt   Enum = 0x1405
	Float         Enum = 0x1406
)

// Attribute and uniform types reported by reflection.
const (
	FloatVec2 Enum = 0x8B50
	FloatVec3 Enum = 0x8B51
	FloatVec4 Enum = 0x8B52
	IntVec2   Enum = 0x8B53
	IntVec3   Enum = 0x8B54
	IntVec4   Enum = 0x8B55
	Bool      Enum = 0x8B56
	BoolVec2  Enum = 0x8B57
	BoolVec3  Enum = 0x8B58
	BoolVec4  Enum = 0x8B59

	FloatMat2 Enum = 0x8B5A
	FloatMat3 Enum = 0x8B5B
	FloatMat4 Enum = 0x8B5C

	Sampler2D       Enum = 0x8B5E
	Sampler3D       Enum = 0x8B5F
	SamplerCube     Enum = 0x8B60
	Sampler2DShadow Enum = 0x8B62

	FloatMat2x3 Enum = 0x8B65
	FloatMat2x4 Enum = 0x8B66
	FloatMat3x2 Enum = 0x8B67
	FloatMat3x4 Enum = 0x8B68
	FloatMat4x2 Enum = 0x8B69
	FloatMat4x3 Enum = 0x8B6A

	UnsignedIntVec2 Enum = 0x8DC6
	UnsignedIntVec3 Enum = 0x8DC7
	UnsignedIntVec4 Enum = 0x8DC8
)

// ActiveInfo describes one active attribute or uniform as reported by the
// driver (glGetActiveAttrib / glGetActiveUniform).
type ActiveInfo struct {
	// Name is the reported name. Uniform arrays are reported as "name[0]".
	Name string

	// Size is the array length, 1 for non-arrays.
	Size int

	// Type is the GL type enum, e.g. FloatVec3.
	Type Enum
}
