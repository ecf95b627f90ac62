// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package opengl implements glcore.Device over an OpenGL 3.3 core context
// using go-gl.
//
// The device issues GL calls directly and keeps no state of its own. A
// context must be current on the calling goroutine, which must be locked
// to its OS thread (runtime.LockOSThread) for the lifetime of the device.
package opengl

import (
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/gldraw/glcore"
)

// Device is a glcore.Device backed by the current OpenGL context.
type Device struct{}

var _ glcore.Device = (*Device)(nil)

// New returns a device for the current context. gl.Init must have been
// called, see Driver.Init.
func New() *Device { return &Device{} }

// SetLogger sets the logger used for driver diagnostics. Nil restores the
// silent default.
func (d *Device) SetLogger(l *slog.Logger) { setLogger(l) }

// cstr returns a NUL-terminated copy of s for go-gl.
func cstr(s string) *uint8 {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return gl.Str(s)
}

// ---- shaders ----

// CreateShader implements glcore.Device.
func (d *Device) CreateShader(stage glcore.Enum) glcore.ShaderID {
	return glcore.ShaderID(gl.CreateShader(uint32(stage)))
}

// ShaderSource implements glcore.Device.
func (d *Device) ShaderSource(shader glcore.ShaderID, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(shader), 1, csources, nil)
	free()
}

// CompileShader implements glcore.Device.
func (d *Device) CompileShader(shader glcore.ShaderID) {
	gl.CompileShader(uint32(shader))
}

// ShaderCompileStatus implements glcore.Device.
func (d *Device) ShaderCompileStatus(shader glcore.ShaderID) bool {
	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

// ShaderInfoLog implements glcore.Device. The log is read with a buffer of
// GL_INFO_LOG_LENGTH bytes.
func (d *Device) ShaderInfoLog(shader glcore.ShaderID) string {
	var n int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetShaderInfoLog(uint32(shader), n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

// DeleteShader implements glcore.Device.
func (d *Device) DeleteShader(shader glcore.ShaderID) {
	gl.DeleteShader(uint32(shader))
}

// ---- programs ----

// CreateProgram implements glcore.Device.
func (d *Device) CreateProgram() glcore.ProgramID {
	return glcore.ProgramID(gl.CreateProgram())
}

// DeleteProgram implements glcore.Device.
func (d *Device) DeleteProgram(program glcore.ProgramID) {
	gl.DeleteProgram(uint32(program))
}

// AttachShader implements glcore.Device.
func (d *Device) AttachShader(program glcore.ProgramID, shader glcore.ShaderID) {
	gl.AttachShader(uint32(program), uint32(shader))
}

// DetachShader implements glcore.Device.
func (d *Device) DetachShader(program glcore.ProgramID, shader glcore.ShaderID) {
	gl.DetachShader(uint32(program), uint32(shader))
}

// LinkProgram implements glcore.Device.
func (d *Device) LinkProgram(program glcore.ProgramID) {
	gl.LinkProgram(uint32(program))
}

// ProgramLinkStatus implements glcore.Device.
func (d *Device) ProgramLinkStatus(program glcore.ProgramID) bool {
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

// ProgramInfoLog implements glcore.Device, see ShaderInfoLog.
func (d *Device) ProgramInfoLog(program glcore.ProgramID) string {
	var n int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetProgramInfoLog(uint32(program), n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

// UseProgram implements glcore.Device.
func (d *Device) UseProgram(program glcore.ProgramID) {
	gl.UseProgram(uint32(program))
}

// ---- reflection ----

// ActiveAttributes implements glcore.Device.
func (d *Device) ActiveAttributes(program glcore.ProgramID) int {
	var n int32
	gl.GetProgramiv(uint32(program), gl.ACTIVE_ATTRIBUTES, &n)
	return int(n)
}

// ActiveAttribute implements glcore.Device.
func (d *Device) ActiveAttribute(program glcore.ProgramID, index int) glcore.ActiveInfo {
	var maxLen int32
	gl.GetProgramiv(uint32(program), gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	return activeInfo(maxLen, func(bufSize int32, length, size *int32, typ *uint32, name *uint8) {
		gl.GetActiveAttrib(uint32(program), uint32(index), bufSize, length, size, typ, name)
	})
}

// AttribLocation implements glcore.Device.
func (d *Device) AttribLocation(program glcore.ProgramID, name string) int32 {
	return gl.GetAttribLocation(uint32(program), cstr(name))
}

// ActiveUniforms implements glcore.Device.
func (d *Device) ActiveUniforms(program glcore.ProgramID) int {
	var n int32
	gl.GetProgramiv(uint32(program), gl.ACTIVE_UNIFORMS, &n)
	return int(n)
}

// ActiveUniform implements glcore.Device.
func (d *Device) ActiveUniform(program glcore.ProgramID, index int) glcore.ActiveInfo {
	var maxLen int32
	gl.GetProgramiv(uint32(program), gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	return activeInfo(maxLen, func(bufSize int32, length, size *int32, typ *uint32, name *uint8) {
		gl.GetActiveUniform(uint32(program), uint32(index), bufSize, length, size, typ, name)
	})
}

// UniformLocation implements glcore.Device.
func (d *Device) UniformLocation(program glcore.ProgramID, name string) glcore.Location {
	return glcore.Location(gl.GetUniformLocation(uint32(program), cstr(name)))
}

// activeInfo runs one glGetActive* query into a name buffer of maxLen bytes.
func activeInfo(maxLen int32, query func(bufSize int32, length, size *int32, typ *uint32, name *uint8)) glcore.ActiveInfo {
	if maxLen < 1 {
		maxLen = 256
	}
	name := make([]uint8, maxLen)
	var length, size int32
	var typ uint32
	query(maxLen, &length, &size, &typ, &name[0])
	return glcore.ActiveInfo{
		Name: string(name[:length]),
		Size: int(size),
		Type: glcore.Enum(typ),
	}
}
