// Package glcore provides the device abstraction shared by the gldraw
// pipeline and its drivers.
//
// This package defines the [Device] interface, a GL-shaped surface covering
// exactly the calls a compiled draw command needs. The same pipeline code runs
// against:
//   - opengl.Device (go-gl, a real OpenGL 3.3 core context)
//   - headless.Device (pure Go, records calls and emulates GLSL reflection)
//
// # Architecture
//
// The device is always passed explicitly. Nothing in gldraw touches a
// package-level GL context, so a command only ever talks to the device it
// was finalized against.
//
//	               +-----------------+
//	               |     gldraw      |
//	               | (Builder, Draw) |
//	               +--------+--------+
//	                        | glcore.Device
//	         +--------------+--------------+
//	         |                             |
//	+--------v--------+          +--------v--------+
//	|  opengl.Device  |          | headless.Device |
//	|    (go-gl)      |          |  (recording)    |
//	+--------+--------+          +-----------------+
//	         |
//	+--------v--------+
//	| OpenGL 3.3 core |
//	+-----------------+
//
// # Handles
//
// GL objects are referred to by opaque handles ([ShaderID], [ProgramID],
// [BufferID], [VertexArrayID]). Zero is never a valid object name, see
// [InvalidID]. Uniform locations are [Location] values where -1 means the
// uniform is not active.
//
// # Types
//
// GL reports attribute and uniform types as enums such as [FloatVec3] or
// [FloatMat4x3]. [TypeOf] decomposes an enum into its scalar kind and its
// column and row counts, which is what the binding and dispatch code checks
// host values against.
//
// # Usage Example
//
//	dev := headless.New()
//	sh := dev.CreateShader(glcore.VertexShader)
//	dev.ShaderSource(sh, src)
//	dev.CompileShader(sh)
//	if !dev.ShaderCompileStatus(sh) {
//	    return errors.New(dev.ShaderInfoLog(sh))
//	}
package glcore
