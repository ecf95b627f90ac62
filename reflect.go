package gldraw

import (
	"strings"

	"github.com/gogpu/gldraw/glcore"
)

// builtinPrefix marks names reserved by GLSL.
const builtinPrefix = "gl_"

// AttributeInfo describes an active vertex input of a linked program.
type AttributeInfo struct {
	Name     string
	Location glcore.Location

	// Type is the GL type enum, e.g. glcore.FloatVec3.
	Type glcore.Enum

	Scalar  glcore.ScalarKind
	Columns int
	Rows    int

	// Size is the array length, 1 for plain attributes.
	Size int
}

// Arity returns the scalars per element, Columns*Rows.
func (a AttributeInfo) Arity() int { return a.Columns * a.Rows }

// UniformInfo describes an active uniform of a linked program.
type UniformInfo struct {
	// Name is the bare name; array uniforms drop the "[0]" suffix drivers
	// report.
	Name     string
	Location glcore.Location
	Type     glcore.Enum

	Scalar  glcore.ScalarKind
	Columns int
	Rows    int

	// Size is the array length, 1 for plain uniforms.
	Size int
}

// Arity returns the scalars per element, Columns*Rows.
func (u UniformInfo) Arity() int { return u.Columns * u.Rows }

// ReflectAttributes lists the active, non-builtin vertex inputs of prog in
// driver order.
func ReflectAttributes(dev glcore.Device, prog glcore.ProgramID) []AttributeInfo {
	n := dev.ActiveAttributes(prog)
	attrs := make([]AttributeInfo, 0, n)
	for i := 0; i < n; i++ {
		info := dev.ActiveAttribute(prog, i)
		if strings.HasPrefix(info.Name, builtinPrefix) {
			continue
		}
		loc := dev.AttribLocation(prog, info.Name)
		if loc < 0 {
			continue
		}
		t := glcore.TypeOf(info.Type)
		attrs = append(attrs, AttributeInfo{
			Name:     info.Name,
			Location: glcore.Location(loc),
			Type:     info.Type,
			Scalar:   t.Scalar,
			Columns:  t.Columns,
			Rows:     t.Rows,
			Size:     max(info.Size, 1),
		})
	}
	Logger().Debug("gldraw: reflected attributes", "program", prog, "count", len(attrs))
	return attrs
}

// ReflectUniforms lists the active, non-builtin uniforms of prog in driver
// order. Uniforms without a location, such as block members, are left out.
func ReflectUniforms(dev glcore.Device, prog glcore.ProgramID) []UniformInfo {
	n := dev.ActiveUniforms(prog)
	uniforms := make([]UniformInfo, 0, n)
	for i := 0; i < n; i++ {
		info := dev.ActiveUniform(prog, i)
		if strings.HasPrefix(info.Name, builtinPrefix) {
			continue
		}
		name := strings.TrimSuffix(info.Name, "[0]")
		loc := dev.UniformLocation(prog, name)
		if loc == glcore.NoLocation {
			continue
		}
		t := glcore.TypeOf(info.Type)
		uniforms = append(uniforms, UniformInfo{
			Name:     name,
			Location: loc,
			Type:     info.Type,
			Scalar:   t.Scalar,
			Columns:  t.Columns,
			Rows:     t.Rows,
			Size:     max(info.Size, 1),
		})
	}
	Logger().Debug("gldraw: reflected uniforms", "program", prog, "count", len(uniforms))
	return uniforms
}
