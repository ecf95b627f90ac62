// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"github.com/gogpu/gldraw/glcore"
)

// uniformAt finds the uniform of the current program that covers loc.
// Location -1 is silently ignored, as in GL.
func (d *Device) uniformAt(loc glcore.Location, op string) (*activeUniform, int, bool) {
	if loc == glcore.NoLocation {
		return nil, 0, false
	}
	p, ok := d.programs[d.currentProgram]
	if !ok {
		d.setError(glcore.InvalidOperation, op)
		return nil, 0, false
	}
	for _, u := range p.uniforms {
		if u.location == glcore.NoLocation {
			continue
		}
		if loc >= u.location && loc < u.location+glcore.Location(u.size) {
			return u, int(loc - u.location), true
		}
	}
	d.setError(glcore.InvalidOperation, op)
	return nil, 0, false
}

// elementCount validates a uniform upload of n scalars in groups of width
// and returns how many array elements it writes starting at index.
func (d *Device) elementCount(u *activeUniform, index, n, width int, op string) (int, bool) {
	if width < 1 || n%width != 0 {
		d.setError(glcore.InvalidValue, op)
		return 0, false
	}
	count := n / width
	if count > 1 && u.size == 1 {
		d.setError(glcore.InvalidOperation, op)
		return 0, false
	}
	if count > u.size-index {
		count = u.size - index
	}
	return count, true
}

// Uniformfv sets a float scalar or vector uniform of the current program.
func (d *Device) Uniformfv(loc glcore.Location, components int, v []float32) {
	d.record(Call{Name: uniformCallName("f", components), Location: loc, Components: components, Floats: append([]float32(nil), v...)})
	u, index, ok := d.uniformAt(loc, "Uniformfv")
	if !ok {
		return
	}
	t := glcore.TypeOf(u.typ)
	if t.IsMatrix() || t.Rows != components || (t.Scalar != glcore.ScalarFloat && t.Scalar != glcore.ScalarBool) {
		d.setError(glcore.InvalidOperation, "Uniformfv")
		return
	}
	count, ok := d.elementCount(u, index, len(v), components, "Uniformfv")
	if !ok {
		return
	}
	n := count * components
	if t.Scalar == glcore.ScalarBool {
		for i := 0; i < n; i++ {
			u.ints[index*components+i] = boolInt(v[i] != 0)
		}
		return
	}
	copy(u.floats[index*components:], v[:n])
}

// Uniformiv sets an int, bool or sampler uniform of the current program.
func (d *Device) Uniformiv(loc glcore.Location, components int, v []int32) {
	d.record(Call{Name: uniformCallName("i", components), Location: loc, Components: components, Ints: append([]int32(nil), v...)})
	u, index, ok := d.uniformAt(loc, "Uniformiv")
	if !ok {
		return
	}
	t := glcore.TypeOf(u.typ)
	if t.IsMatrix() || t.Rows != components {
		d.setError(glcore.InvalidOperation, "Uniformiv")
		return
	}
	switch t.Scalar {
	case glcore.ScalarInt, glcore.ScalarSampler, glcore.ScalarBool:
	default:
		d.setError(glcore.InvalidOperation, "Uniformiv")
		return
	}
	count, ok := d.elementCount(u, index, len(v), components, "Uniformiv")
	if !ok {
		return
	}
	n := count * components
	for i := 0; i < n; i++ {
		if t.Scalar == glcore.ScalarBool {
			u.ints[index*components+i] = boolInt(v[i] != 0)
		} else {
			u.ints[index*components+i] = v[i]
		}
	}
}

// Uniformuiv sets a uint or bool uniform of the current program.
func (d *Device) Uniformuiv(loc glcore.Location, components int, v []uint32) {
	d.record(Call{Name: uniformCallName("ui", components), Location: loc, Components: components, Uints: append([]uint32(nil), v...)})
	u, index, ok := d.uniformAt(loc, "Uniformuiv")
	if !ok {
		return
	}
	t := glcore.TypeOf(u.typ)
	if t.IsMatrix() || t.Rows != components || (t.Scalar != glcore.ScalarUint && t.Scalar != glcore.ScalarBool) {
		d.setError(glcore.InvalidOperation, "Uniformuiv")
		return
	}
	count, ok := d.elementCount(u, index, len(v), components, "Uniformuiv")
	if !ok {
		return
	}
	n := count * components
	if t.Scalar == glcore.ScalarBool {
		for i := 0; i < n; i++ {
			u.ints[index*components+i] = boolInt(v[i] != 0)
		}
		return
	}
	copy(u.uints[index*components:], v[:n])
}

// UniformMatrixfv sets a matrix uniform of the current program. Data is
// column-major.
func (d *Device) UniformMatrixfv(loc glcore.Location, columns, rows int, v []float32) {
	d.record(Call{Name: matrixCallName(columns, rows), Location: loc, Columns: columns, Rows: rows, Floats: append([]float32(nil), v...)})
	u, index, ok := d.uniformAt(loc, "UniformMatrixfv")
	if !ok {
		return
	}
	t := glcore.TypeOf(u.typ)
	if !t.IsMatrix() || t.Columns != columns || t.Rows != rows {
		d.setError(glcore.InvalidOperation, "UniformMatrixfv")
		return
	}
	arity := columns * rows
	count, ok := d.elementCount(u, index, len(v), arity, "UniformMatrixfv")
	if !ok {
		return
	}
	copy(u.floats[index*arity:], v[:count*arity])
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// uniformCallName returns the GL entry point name, e.g. "Uniform3fv".
func uniformCallName(suffix string, components int) string {
	if components < 1 || components > 4 {
		return "Uniform?" + suffix + "v"
	}
	return "Uniform" + string(rune('0'+components)) + suffix + "v"
}

// matrixCallName returns the GL entry point name, e.g. "UniformMatrix4fv"
// or "UniformMatrix2x3fv".
func matrixCallName(columns, rows int) string {
	if columns < 2 || columns > 4 || rows < 2 || rows > 4 {
		return "UniformMatrix?fv"
	}
	c := string(rune('0' + columns))
	if columns == rows {
		return "UniformMatrix" + c + "fv"
	}
	return "UniformMatrix" + c + "x" + string(rune('0'+rows)) + "fv"
}

// UniformFloats returns the stored value of a float or matrix uniform of
// program, covering the whole array.
func (d *Device) UniformFloats(program glcore.ProgramID, name string) ([]float32, bool) {
	u, ok := d.findUniform(program, name)
	if !ok || u.floats == nil {
		return nil, false
	}
	return append([]float32(nil), u.floats...), true
}

// UniformInts returns the stored value of an int, bool or sampler uniform.
func (d *Device) UniformInts(program glcore.ProgramID, name string) ([]int32, bool) {
	u, ok := d.findUniform(program, name)
	if !ok || u.ints == nil {
		return nil, false
	}
	return append([]int32(nil), u.ints...), true
}

// UniformUints returns the stored value of a uint uniform.
func (d *Device) UniformUints(program glcore.ProgramID, name string) ([]uint32, bool) {
	u, ok := d.findUniform(program, name)
	if !ok || u.uints == nil {
		return nil, false
	}
	return append([]uint32(nil), u.uints...), true
}

func (d *Device) findUniform(program glcore.ProgramID, name string) (*activeUniform, bool) {
	p, ok := d.programs[program]
	if !ok {
		return nil, false
	}
	for _, u := range p.uniforms {
		if u.name == name {
			return u, true
		}
	}
	return nil, false
}
