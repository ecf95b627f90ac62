// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/gldraw/glcore"
)

// builtinAttributes are vertex inputs the driver reports when referenced.
var builtinAttributes = []string{"gl_VertexID", "gl_InstanceID"}

type programObject struct {
	shaders map[glcore.ShaderID]*shaderObject
	linked  bool
	log     string

	attributes []activeAttribute
	uniforms   []*activeUniform
}

type activeAttribute struct {
	info     glcore.ActiveInfo
	location int32
}

type activeUniform struct {
	name     string
	typ      glcore.Enum
	size     int
	location glcore.Location

	floats []float32
	ints   []int32
	uints  []uint32
}

// reportedName is the name glGetActiveUniform returns: arrays get "[0]".
func (u *activeUniform) reportedName() string {
	if u.size > 1 {
		return u.name + "[0]"
	}
	return u.name
}

// CreateProgram creates an empty program object.
func (d *Device) CreateProgram() glcore.ProgramID {
	id := glcore.ProgramID(d.allocID())
	d.programs[id] = &programObject{shaders: make(map[glcore.ShaderID]*shaderObject)}
	d.record(Call{Name: "CreateProgram", Program: id})
	return id
}

// AttachShader attaches a shader object to a program.
func (d *Device) AttachShader(program glcore.ProgramID, shader glcore.ShaderID) {
	p, pok := d.programs[program]
	s, sok := d.shaders[shader]
	if !pok || !sok {
		d.setError(glcore.InvalidValue, "AttachShader")
		return
	}
	if _, dup := p.shaders[shader]; dup {
		d.setError(glcore.InvalidOperation, "AttachShader")
		return
	}
	p.shaders[shader] = s
	d.record(Call{Name: "AttachShader", Program: program, Shader: shader})
}

// DetachShader detaches a shader object from a program.
func (d *Device) DetachShader(program glcore.ProgramID, shader glcore.ShaderID) {
	p, ok := d.programs[program]
	if !ok {
		d.setError(glcore.InvalidValue, "DetachShader")
		return
	}
	if _, attached := p.shaders[shader]; !attached {
		d.setError(glcore.InvalidOperation, "DetachShader")
		return
	}
	delete(p.shaders, shader)
	d.record(Call{Name: "DetachShader", Program: program, Shader: shader})
}

// LinkProgram links the attached shaders and computes the active
// attribute and uniform tables.
func (d *Device) LinkProgram(program glcore.ProgramID) {
	p, ok := d.programs[program]
	if !ok {
		d.setError(glcore.InvalidValue, "LinkProgram")
		return
	}
	d.record(Call{Name: "LinkProgram", Program: program})

	p.linked = false
	p.attributes = nil
	p.uniforms = nil

	if err := d.link(p); err != "" {
		p.log = "error: " + err + "\n"
		slogger().Debug("headless: link failed", "program", program, "log", err)
		return
	}
	p.linked = true
	p.log = ""

	if d.reverse {
		slices.Reverse(p.attributes)
		slices.Reverse(p.uniforms)
	}
}

func (d *Device) link(p *programObject) string {
	var vert, frag *shaderUnit
	for _, id := range sortedKeys(p.shaders) {
		s := p.shaders[id]
		if !s.compiled {
			return "linking with uncompiled shader"
		}
		switch s.stage {
		case glcore.VertexShader:
			if vert != nil {
				return "multiple vertex shaders attached"
			}
			vert = s.unit
		case glcore.FragmentShader:
			if frag != nil {
				return "multiple fragment shaders attached"
			}
			frag = s.unit
		}
	}
	if vert == nil {
		return "no vertex shader attached"
	}
	if frag == nil {
		return "no fragment shader attached"
	}

	if err := matchVaryings(vert, frag); err != "" {
		return err
	}
	attrs, err := d.assignAttributes(vert)
	if err != "" {
		return err
	}
	uniforms, err := collectUniforms(vert, frag)
	if err != "" {
		return err
	}
	p.attributes = attrs
	p.uniforms = uniforms
	return ""
}

// matchVaryings checks that every fragment input is written by the vertex
// stage with the same type.
func matchVaryings(vert, frag *shaderUnit) string {
	outs := make(map[string]declaration)
	for _, d := range vert.decls {
		if d.storage == storageOut {
			outs[d.name] = d
		}
	}
	for _, in := range frag.decls {
		if in.storage != storageIn {
			continue
		}
		out, ok := outs[in.name]
		if !ok {
			return fmt.Sprintf("fragment shader input `%s' has no matching output in the previous stage", in.name)
		}
		if out.typ != in.typ || out.size != in.size {
			return fmt.Sprintf("`%s' type mismatch between shader stages: %s vs %s",
				in.name, glcore.TypeName(out.typ), glcore.TypeName(in.typ))
		}
	}
	return ""
}

// assignAttributes lists the active vertex inputs and gives each one a
// location. Explicit layout locations are honoured first; the rest take the
// lowest free run of slots. Matrices use one slot per column.
func (d *Device) assignAttributes(vert *shaderUnit) ([]activeAttribute, string) {
	type pending struct {
		decl  declaration
		slots int
	}
	var active []pending
	for _, decl := range vert.decls {
		if decl.storage != storageIn || !vert.used(decl.name) {
			continue
		}
		active = append(active, pending{decl, glcore.TypeOf(decl.typ).Columns * decl.size})
	}

	taken := make([]bool, d.maxAttribs)
	reserve := func(start, n int) bool {
		if start < 0 || start+n > len(taken) {
			return false
		}
		for i := start; i < start+n; i++ {
			if taken[i] {
				return false
			}
		}
		for i := start; i < start+n; i++ {
			taken[i] = true
		}
		return true
	}

	locations := make([]int, len(active))
	for i, a := range active {
		locations[i] = -1
		if a.decl.location >= 0 {
			if !reserve(a.decl.location, a.slots) {
				return nil, fmt.Sprintf("insufficient contiguous locations available for vertex shader input `%s'", a.decl.name)
			}
			locations[i] = a.decl.location
		}
	}
	for i, a := range active {
		if locations[i] >= 0 {
			continue
		}
		for start := 0; start < len(taken); start++ {
			if reserve(start, a.slots) {
				locations[i] = start
				break
			}
		}
		if locations[i] < 0 {
			return nil, fmt.Sprintf("too many vertex shader inputs (max %d)", d.maxAttribs)
		}
	}

	attrs := make([]activeAttribute, 0, len(active)+len(builtinAttributes))
	for i, a := range active {
		attrs = append(attrs, activeAttribute{
			info:     glcore.ActiveInfo{Name: a.decl.name, Size: a.decl.size, Type: a.decl.typ},
			location: int32(locations[i]),
		})
	}
	for _, name := range builtinAttributes {
		if vert.builtinUses(name) {
			attrs = append(attrs, activeAttribute{
				info:     glcore.ActiveInfo{Name: name, Size: 1, Type: glcore.Int},
				location: -1,
			})
		}
	}
	return attrs, ""
}

// collectUniforms merges the uniform declarations of both stages. A uniform
// is active when any stage that declares it also references it.
func collectUniforms(units ...*shaderUnit) ([]*activeUniform, string) {
	var order []string
	decls := make(map[string]declaration)
	active := make(map[string]bool)

	for _, u := range units {
		for _, d := range u.decls {
			if d.storage != storageUniform {
				continue
			}
			if prev, seen := decls[d.name]; seen {
				if prev.typ != d.typ || prev.size != d.size {
					return nil, fmt.Sprintf("uniform `%s' declared as type `%s' and type `%s'",
						d.name, glcore.TypeName(prev.typ), glcore.TypeName(d.typ))
				}
			} else {
				decls[d.name] = d
				order = append(order, d.name)
			}
			if u.used(d.name) {
				active[d.name] = true
			}
		}
	}

	var out []*activeUniform
	next := 0
	for _, name := range order {
		if !active[name] {
			continue
		}
		d := decls[name]
		u := &activeUniform{
			name:     name,
			typ:      d.typ,
			size:     d.size,
			location: glcore.Location(next),
		}
		n := glcore.TypeOf(d.typ).Arity() * d.size
		switch glcore.TypeOf(d.typ).Scalar {
		case glcore.ScalarFloat:
			u.floats = make([]float32, n)
		case glcore.ScalarUint:
			u.uints = make([]uint32, n)
		default:
			u.ints = make([]int32, n)
		}
		out = append(out, u)
		next += d.size
	}

	for _, field := range []string{"near", "far", "diff"} {
		for _, u := range units {
			if usesMember(u, "gl_DepthRange", field) {
				out = append(out, &activeUniform{
					name:     "gl_DepthRange." + field,
					typ:      glcore.Float,
					size:     1,
					location: glcore.NoLocation,
				})
				break
			}
		}
	}
	return out, ""
}

func usesMember(u *shaderUnit, base, field string) bool {
	for i := 0; i+2 < len(u.words); i++ {
		if u.words[i].text == base && u.words[i+1].text == "." && u.words[i+2].text == field {
			return true
		}
	}
	return false
}

// ProgramLinkStatus reports whether the last link succeeded.
func (d *Device) ProgramLinkStatus(program glcore.ProgramID) bool {
	p, ok := d.programs[program]
	return ok && p.linked
}

// ProgramInfoLog returns the diagnostics of the last link.
func (d *Device) ProgramInfoLog(program glcore.ProgramID) string {
	if p, ok := d.programs[program]; ok {
		return p.log
	}
	return ""
}

// UseProgram makes a linked program current. Zero unbinds.
func (d *Device) UseProgram(program glcore.ProgramID) {
	if program != glcore.InvalidID {
		p, ok := d.programs[program]
		if !ok || !p.linked {
			d.setError(glcore.InvalidOperation, "UseProgram")
			return
		}
	}
	d.currentProgram = program
	d.record(Call{Name: "UseProgram", Program: program})
}

// DeleteProgram deletes a program object. Unknown names are ignored. A
// current program stops being current.
func (d *Device) DeleteProgram(program glcore.ProgramID) {
	if _, ok := d.programs[program]; !ok {
		return
	}
	delete(d.programs, program)
	if d.currentProgram == program {
		d.currentProgram = glcore.InvalidID
	}
	d.record(Call{Name: "DeleteProgram", Program: program})
}

// ProgramCount returns the number of live program objects.
func (d *Device) ProgramCount() int { return len(d.programs) }

// CurrentProgram returns the program made current by UseProgram.
func (d *Device) CurrentProgram() glcore.ProgramID { return d.currentProgram }

// ---- reflection ----

// ActiveAttributes returns the number of active vertex inputs.
func (d *Device) ActiveAttributes(program glcore.ProgramID) int {
	if p, ok := d.programs[program]; ok {
		return len(p.attributes)
	}
	d.setError(glcore.InvalidValue, "ActiveAttributes")
	return 0
}

// ActiveAttribute describes the active vertex input at index.
func (d *Device) ActiveAttribute(program glcore.ProgramID, index int) glcore.ActiveInfo {
	p, ok := d.programs[program]
	if !ok || index < 0 || index >= len(p.attributes) {
		d.setError(glcore.InvalidValue, "ActiveAttribute")
		return glcore.ActiveInfo{}
	}
	return p.attributes[index].info
}

// AttribLocation returns the slot of an active vertex input, or -1.
func (d *Device) AttribLocation(program glcore.ProgramID, name string) int32 {
	p, ok := d.programs[program]
	if !ok || !p.linked {
		d.setError(glcore.InvalidOperation, "AttribLocation")
		return -1
	}
	for _, a := range p.attributes {
		if a.info.Name == name {
			return a.location
		}
	}
	return -1
}

// ActiveUniforms returns the number of active uniforms.
func (d *Device) ActiveUniforms(program glcore.ProgramID) int {
	if p, ok := d.programs[program]; ok {
		return len(p.uniforms)
	}
	d.setError(glcore.InvalidValue, "ActiveUniforms")
	return 0
}

// ActiveUniform describes the active uniform at index.
func (d *Device) ActiveUniform(program glcore.ProgramID, index int) glcore.ActiveInfo {
	p, ok := d.programs[program]
	if !ok || index < 0 || index >= len(p.uniforms) {
		d.setError(glcore.InvalidValue, "ActiveUniform")
		return glcore.ActiveInfo{}
	}
	u := p.uniforms[index]
	return glcore.ActiveInfo{Name: u.reportedName(), Size: u.size, Type: u.typ}
}

// UniformLocation returns the location of an active uniform. Array
// elements may be addressed as "name[i]".
func (d *Device) UniformLocation(program glcore.ProgramID, name string) glcore.Location {
	p, ok := d.programs[program]
	if !ok || !p.linked {
		d.setError(glcore.InvalidOperation, "UniformLocation")
		return glcore.NoLocation
	}
	base, index := splitArrayName(name)
	for _, u := range p.uniforms {
		if u.name != base || u.location == glcore.NoLocation {
			continue
		}
		if index >= u.size {
			return glcore.NoLocation
		}
		return u.location + glcore.Location(index)
	}
	return glcore.NoLocation
}

// splitArrayName splits "name[i]" into name and i. Plain names get index 0.
func splitArrayName(name string) (string, int) {
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return name, 0
	}
	i, err := strconv.Atoi(name[open+1 : len(name)-1])
	if err != nil || i < 0 {
		return name, 0
	}
	return name[:open], i
}
