// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless provides a pure Go glcore.Device that needs no GPU.
//
// The device keeps GL object state in memory, records every call, and
// emulates the parts of a GLSL compiler the draw pipeline depends on:
// compile diagnostics, interface matching at link time, and active
// attribute/uniform reflection. It is what the gldraw tests run against and
// the fallback driver when no OpenGL context is available.
package headless

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gogpu/gldraw/glcore"
)

// DefaultMaxVertexAttribs is the attribute slot limit reported by OpenGL 3.3
// implementations at minimum.
const DefaultMaxVertexAttribs = 16

// Option configures a Device.
type Option func(*Device)

// WithReverseReflection makes the device enumerate active attributes and
// uniforms in reverse declaration order. Drivers do not promise any order;
// this exercises callers that must not depend on one.
func WithReverseReflection() Option {
	return func(d *Device) { d.reverse = true }
}

// WithMaxVertexAttribs sets the number of attribute slots available to a
// program. Linking fails when the vertex stage needs more.
func WithMaxVertexAttribs(n int) Option {
	return func(d *Device) { d.maxAttribs = n }
}

// Device is an in-memory glcore.Device.
//
// Device is not safe for concurrent use, matching a GL context.
type Device struct {
	reverse    bool
	maxAttribs int

	nextID   uint32
	shaders  map[glcore.ShaderID]*shaderObject
	programs map[glcore.ProgramID]*programObject
	buffers  map[glcore.BufferID]*bufferObject
	arrays   map[glcore.VertexArrayID]*vertexArrayObject

	currentProgram glcore.ProgramID
	currentArray   glcore.VertexArrayID
	arrayBuffer    glcore.BufferID

	errors []glcore.Enum
	calls  []Call
}

var _ glcore.Device = (*Device)(nil)

// New creates a headless device.
func New(opts ...Option) *Device {
	d := &Device{
		maxAttribs: DefaultMaxVertexAttribs,
		shaders:    make(map[glcore.ShaderID]*shaderObject),
		programs:   make(map[glcore.ProgramID]*programObject),
		buffers:    make(map[glcore.BufferID]*bufferObject),
		arrays:     make(map[glcore.VertexArrayID]*vertexArrayObject),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetLogger sets the logger used for device diagnostics. Nil restores the
// silent default.
func (d *Device) SetLogger(l *slog.Logger) { setLogger(l) }

func (d *Device) allocID() uint32 {
	d.nextID++
	return d.nextID
}

// setError records a GL error flag. Like GL, only the first error is kept
// until GetError clears it.
func (d *Device) setError(e glcore.Enum, op string) {
	slogger().Debug("headless: gl error", "op", op, "error", fmt.Sprintf("0x%04X", uint32(e)))
	if len(d.errors) == 0 {
		d.errors = append(d.errors, e)
	}
}

// GetError returns and clears the recorded error flag.
func (d *Device) GetError() glcore.Enum {
	if len(d.errors) == 0 {
		return glcore.NoError
	}
	e := d.errors[0]
	d.errors = d.errors[1:]
	return e
}

// ---- shaders ----

type shaderObject struct {
	stage    glcore.Enum
	source   string
	compiled bool
	log      string
	unit     *shaderUnit
}

// CreateShader creates a shader object for the given stage.
func (d *Device) CreateShader(stage glcore.Enum) glcore.ShaderID {
	if stage != glcore.VertexShader && stage != glcore.FragmentShader {
		d.setError(glcore.InvalidEnum, "CreateShader")
		return glcore.InvalidID
	}
	id := glcore.ShaderID(d.allocID())
	d.shaders[id] = &shaderObject{stage: stage}
	d.record(Call{Name: "CreateShader", Shader: id})
	return id
}

// ShaderSource replaces the source of a shader.
func (d *Device) ShaderSource(shader glcore.ShaderID, source string) {
	s, ok := d.shaders[shader]
	if !ok {
		d.setError(glcore.InvalidValue, "ShaderSource")
		return
	}
	s.source = source
	d.record(Call{Name: "ShaderSource", Shader: shader})
}

// CompileShader analyzes the shader source.
func (d *Device) CompileShader(shader glcore.ShaderID) {
	s, ok := d.shaders[shader]
	if !ok {
		d.setError(glcore.InvalidValue, "CompileShader")
		return
	}
	d.record(Call{Name: "CompileShader", Shader: shader})

	res := analyses.getOrAnalyze(analysisKey{s.stage, s.source}, func() analysis {
		unit, errs := analyze(s.stage, s.source)
		if len(errs) > 0 {
			return analysis{errs: errs}
		}
		return analysis{unit: unit}
	})
	if len(res.errs) > 0 {
		s.compiled = false
		s.unit = nil
		s.log = strings.Join(res.errs, "\n") + "\n"
		return
	}
	s.compiled = true
	s.unit = res.unit
	s.log = ""
}

// ShaderCompileStatus reports whether the last compile succeeded.
func (d *Device) ShaderCompileStatus(shader glcore.ShaderID) bool {
	s, ok := d.shaders[shader]
	return ok && s.compiled
}

// ShaderInfoLog returns the diagnostics of the last compile.
func (d *Device) ShaderInfoLog(shader glcore.ShaderID) string {
	if s, ok := d.shaders[shader]; ok {
		return s.log
	}
	return ""
}

// DeleteShader deletes a shader object. Programs it is attached to keep
// working.
func (d *Device) DeleteShader(shader glcore.ShaderID) {
	if _, ok := d.shaders[shader]; !ok {
		return
	}
	delete(d.shaders, shader)
	d.record(Call{Name: "DeleteShader", Shader: shader})
}

// ShaderCount returns the number of live shader objects.
func (d *Device) ShaderCount() int { return len(d.shaders) }

// ---- drawing ----

// DrawArrays records a non-indexed draw.
func (d *Device) DrawArrays(mode glcore.Enum, first, count int32) {
	if !d.checkDraw(mode, count, "DrawArrays") {
		return
	}
	d.record(Call{Name: "DrawArrays", Program: d.currentProgram, VertexArray: d.currentArray, Mode: mode, First: first, Count: count})
}

// DrawElements records an indexed draw. The current vertex array must have
// an element buffer bound.
func (d *Device) DrawElements(mode glcore.Enum, count int32, typ glcore.Enum, offset int) {
	if !d.checkDraw(mode, count, "DrawElements") {
		return
	}
	if typ != glcore.UnsignedByte && typ != glcore.UnsignedShort && typ != glcore.UnsignedInt {
		d.setError(glcore.InvalidEnum, "DrawElements")
		return
	}
	if d.arrays[d.currentArray].element == glcore.InvalidID {
		d.setError(glcore.InvalidOperation, "DrawElements")
		return
	}
	d.record(Call{Name: "DrawElements", Program: d.currentProgram, VertexArray: d.currentArray, Mode: mode, Count: count, Type: typ, Offset: offset})
}

func (d *Device) checkDraw(mode glcore.Enum, count int32, op string) bool {
	if mode > glcore.TriangleFan {
		d.setError(glcore.InvalidEnum, op)
		return false
	}
	if count < 0 {
		d.setError(glcore.InvalidValue, op)
		return false
	}
	if d.currentProgram == glcore.InvalidID || d.currentArray == glcore.InvalidID {
		d.setError(glcore.InvalidOperation, op)
		return false
	}
	return true
}

// ---- call recording ----

// Call is one recorded device call. Only the fields relevant to Name are set.
type Call struct {
	Name string

	Shader      glcore.ShaderID
	Program     glcore.ProgramID
	Buffer      glcore.BufferID
	VertexArray glcore.VertexArrayID

	Target glcore.Enum
	Mode   glcore.Enum
	Type   glcore.Enum

	Location   glcore.Location
	Index      uint32
	Size       int32
	Stride     int32
	Offset     int
	First      int32
	Count      int32
	Components int
	Columns    int
	Rows       int

	Floats []float32
	Ints   []int32
	Uints  []uint32
	Bytes  int
}

func (d *Device) record(c Call) {
	d.calls = append(d.calls, c)
}

// Calls returns a copy of every call recorded since the last ResetCalls.
func (d *Device) Calls() []Call {
	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// CallsNamed returns the recorded calls with the given name, in order.
func (d *Device) CallsNamed(name string) []Call {
	var out []Call
	for _, c := range d.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// CallNames returns the names of all recorded calls, in order.
func (d *Device) CallNames() []string {
	names := make([]string, len(d.calls))
	for i, c := range d.calls {
		names[i] = c.Name
	}
	return names
}

// ResetCalls clears the call log. Object state is kept.
func (d *Device) ResetCalls() {
	d.calls = d.calls[:0]
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[K ~uint32, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
