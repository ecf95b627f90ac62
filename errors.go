package gldraw

import "errors"

// Sentinel errors. Operations wrap them with the offending name and, where
// the driver provides one, its diagnostic log.
var (
	// ErrShaderCompile is returned when the driver rejects a shader source.
	ErrShaderCompile = errors.New("gldraw: shader compile failed")

	// ErrProgramLink is returned when a vertex/fragment pair fails to link.
	ErrProgramLink = errors.New("gldraw: program link failed")

	// ErrUniformMismatch is returned by Command.Draw when a provider
	// computes a value whose shape does not fit the reflected uniform.
	ErrUniformMismatch = errors.New("gldraw: uniform value does not match shader type")

	// ErrAttributeMismatch is returned when a vertex stream cannot feed the
	// attribute it is bound to.
	ErrAttributeMismatch = errors.New("gldraw: vertex data does not match attribute type")

	// ErrElementsMismatch is returned when index tuples do not fit the
	// primitive kind, e.g. triangles under a line topology.
	ErrElementsMismatch = errors.New("gldraw: element data does not match primitive")

	// ErrPrimitiveAfterElements is returned when the primitive kind is set
	// after element data was uploaded.
	ErrPrimitiveAfterElements = errors.New("gldraw: primitive must be set before elements")

	// ErrFinalized is returned when a builder is used after Finalize.
	ErrFinalized = errors.New("gldraw: builder already finalized")

	// ErrEmptyData is returned when nil or zero-length vertex or element
	// data is uploaded, or a nil provider is attached.
	ErrEmptyData = errors.New("gldraw: empty data")
)
