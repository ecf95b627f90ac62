package glcore

// Device is the GL-shaped surface a compiled draw command runs against.
//
// Method names and argument order follow the OpenGL calls they stand for.
// Implementations are not safe for concurrent use: all calls must come from
// the goroutine that owns the underlying context.
type Device interface {
	// Shaders

	CreateShader(stage Enum) ShaderID
	ShaderSource(shader ShaderID, source string)
	CompileShader(shader ShaderID)
	ShaderCompileStatus(shader ShaderID) bool
	ShaderInfoLog(shader ShaderID) string
	DeleteShader(shader ShaderID)

	// Programs

	CreateProgram() ProgramID
	AttachShader(program ProgramID, shader ShaderID)
	DetachShader(program ProgramID, shader ShaderID)
	LinkProgram(program ProgramID)
	ProgramLinkStatus(program ProgramID) bool
	ProgramInfoLog(program ProgramID) string
	UseProgram(program ProgramID)
	DeleteProgram(program ProgramID)

	// Reflection

	ActiveAttributes(program ProgramID) int
	ActiveAttribute(program ProgramID, index int) ActiveInfo
	AttribLocation(program ProgramID, name string) int32
	ActiveUniforms(program ProgramID) int
	ActiveUniform(program ProgramID, index int) ActiveInfo
	UniformLocation(program ProgramID, name string) Location

	// Buffers

	CreateBuffer() BufferID
	BindBuffer(target Enum, buffer BufferID)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(buffer BufferID)

	// Vertex arrays

	CreateVertexArray() VertexArrayID
	BindVertexArray(vao VertexArrayID)
	DeleteVertexArray(vao VertexArrayID)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)
	VertexAttribIPointer(index uint32, size int32, typ Enum, stride int32, offset int)

	// Uniforms. components is the vector width (1 to 4) and len(v) is a
	// multiple of it; the number of array elements set is len(v)/components.

	Uniformfv(loc Location, components int, v []float32)
	Uniformiv(loc Location, components int, v []int32)
	Uniformuiv(loc Location, components int, v []uint32)
	UniformMatrixfv(loc Location, columns, rows int, v []float32)

	// Drawing

	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, typ Enum, offset int)

	// GetError returns and clears the oldest recorded error flag.
	GetError() Enum
}
