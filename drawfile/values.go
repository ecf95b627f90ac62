package drawfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gldraw"
	"github.com/gogpu/gldraw/glcore"
)

// constant builds a uniform value from a type name such as "vec3" or
// "float[4]" and a number or flat list. An empty type name is inferred
// from the value: a number is a float, a list of 2 to 4 numbers a vector.
func constant(typeName string, raw any) (gldraw.Value, error) {
	nums, err := numbers(raw)
	if err != nil {
		return nil, err
	}
	if typeName == "" {
		switch n := len(nums); {
		case n == 1:
			typeName = "float"
		case n >= 2 && n <= 4:
			typeName = "vec" + strconv.Itoa(n)
		default:
			return nil, fmt.Errorf("%w: cannot infer a type for %d values", ErrInvalid, n)
		}
	}

	base, length, err := splitArrayType(typeName)
	if err != nil {
		return nil, err
	}
	typ, err := lookupType(base)
	if err != nil {
		return nil, err
	}
	count := 1
	if length > 0 {
		count = length
	}
	if len(nums) != typ.Arity()*count {
		return nil, fmt.Errorf("%w: %s needs %d values, got %d", ErrInvalid, typeName, typ.Arity()*count, len(nums))
	}
	return makeValue(typ, length > 0, nums)
}

// vertexData converts an attribute's flat data into a vertex stream.
func vertexData(a Attribute) (gldraw.VertexData, error) {
	typeName := a.Type
	if typeName == "" {
		size := a.Size
		if size == 0 {
			size = 1
		}
		if size < 1 || size > 4 {
			return nil, fmt.Errorf("%w: attribute %q: size %d out of range", ErrInvalid, a.Name, a.Size)
		}
		typeName = "float"
		if size > 1 {
			typeName = "vec" + strconv.Itoa(size)
		}
	}
	typ, err := lookupType(typeName)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
	}
	if len(a.Data) == 0 || len(a.Data)%typ.Arity() != 0 {
		return nil, fmt.Errorf("%w: attribute %q: %d values do not divide into %s vertices",
			ErrInvalid, a.Name, len(a.Data), typeName)
	}
	v, err := makeValue(typ, true, a.Data)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
	}
	return v.(gldraw.VertexData), nil
}

// elements converts a flat index list or a list of pairs or triples.
func elements(raw any) (gldraw.Elements, error) {
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("%w: elements must be a non-empty list", ErrInvalid)
	}
	group, grouped := list[0].([]any)
	if !grouped {
		idx, err := indices(list)
		if err != nil {
			return nil, err
		}
		return gldraw.Indices(idx), nil
	}

	width := len(group)
	if width != 2 && width != 3 {
		return nil, fmt.Errorf("%w: element groups must have 2 or 3 indices, got %d", ErrInvalid, width)
	}
	flat := make([]any, 0, width*len(list))
	for i, g := range list {
		g, ok := g.([]any)
		if !ok || len(g) != width {
			return nil, fmt.Errorf("%w: element group %d is not a list of %d", ErrInvalid, i, width)
		}
		flat = append(flat, g...)
	}
	idx, err := indices(flat)
	if err != nil {
		return nil, err
	}
	if width == 2 {
		return gldraw.LineIndices(split(idx, 2, func(s []uint32) [2]uint32 { return [2]uint32(s) })), nil
	}
	return gldraw.TriangleIndices(split(idx, 3, func(s []uint32) [3]uint32 { return [3]uint32(s) })), nil
}

func indices(list []any) ([]uint32, error) {
	nums, err := numbers(list)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(nums))
	for i, n := range nums {
		if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
			return nil, fmt.Errorf("%w: bad index %v", ErrInvalid, n)
		}
		out[i] = uint32(n)
	}
	return out, nil
}

// numbers flattens a decoded number or list of numbers. YAML yields int
// and float64, TOML int64 and float64.
func numbers(raw any) ([]float64, error) {
	switch v := raw.(type) {
	case []any:
		out := make([]float64, 0, len(v))
		for _, e := range v {
			n, ok := number(e)
			if !ok {
				return nil, fmt.Errorf("%w: %v is not a number", ErrInvalid, e)
			}
			out = append(out, n)
		}
		return out, nil
	case []float64:
		return v, nil
	}
	if n, ok := number(raw); ok {
		return []float64{n}, nil
	}
	return nil, fmt.Errorf("%w: %v is not a number or list", ErrInvalid, raw)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// splitArrayType splits "float[3]" into "float" and 3. A name without a
// suffix has length 0.
func splitArrayType(name string) (string, int, error) {
	open := strings.IndexByte(name, '[')
	if open < 0 {
		return name, 0, nil
	}
	if !strings.HasSuffix(name, "]") {
		return "", 0, fmt.Errorf("%w: bad type %q", ErrInvalid, name)
	}
	n, err := strconv.Atoi(name[open+1 : len(name)-1])
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("%w: bad array length in %q", ErrInvalid, name)
	}
	return name[:open], n, nil
}

func lookupType(name string) (glcore.Type, error) {
	e, ok := glcore.TypeByName(name)
	if !ok {
		return glcore.Type{}, fmt.Errorf("%w: unknown type %q", ErrInvalid, name)
	}
	t := glcore.TypeOf(e)
	switch t.Scalar {
	case glcore.ScalarBool:
		// Booleans are set through the integer calls.
		t.Scalar = glcore.ScalarInt
	case glcore.ScalarSampler:
		return glcore.Type{}, fmt.Errorf("%w: sampler type %q is not supported", ErrInvalid, name)
	}
	return t, nil
}

func split[E, S any](flat []S, width int, conv func([]S) E) []E {
	out := make([]E, len(flat)/width)
	for i := range out {
		out[i] = conv(flat[i*width : (i+1)*width])
	}
	return out
}

func toFloats(nums []float64) []float32 {
	out := make([]float32, len(nums))
	for i, n := range nums {
		out[i] = float32(n)
	}
	return out
}

func toInts(nums []float64) []int32 {
	out := make([]int32, len(nums))
	for i, n := range nums {
		out[i] = int32(n)
	}
	return out
}

func toUints(nums []float64) []uint32 {
	out := make([]uint32, len(nums))
	for i, n := range nums {
		out[i] = uint32(n)
	}
	return out
}

// makeValue assembles the gldraw value of type t from flat numbers. The
// length of nums must be a multiple of t.Arity, and equal to it when array
// is false.
func makeValue(t glcore.Type, array bool, nums []float64) (gldraw.Value, error) {
	switch t.Scalar {
	case glcore.ScalarFloat:
		return floatValue(t, array, toFloats(nums))
	case glcore.ScalarInt:
		for _, n := range nums {
			if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
				return nil, fmt.Errorf("%w: %v is not an int", ErrInvalid, n)
			}
		}
		return intValue(t, array, toInts(nums)), nil
	case glcore.ScalarUint:
		for _, n := range nums {
			if n != math.Trunc(n) || n < 0 || n > math.MaxUint32 {
				return nil, fmt.Errorf("%w: %v is not a uint", ErrInvalid, n)
			}
		}
		return uintValue(t, array, toUints(nums)), nil
	}
	return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalid, t.Scalar)
}

func floatValue(t glcore.Type, array bool, f []float32) (gldraw.Value, error) {
	switch [2]int{t.Columns, t.Rows} {
	case [2]int{1, 1}:
		if array {
			return gldraw.Floats(f), nil
		}
		return gldraw.Float(f[0]), nil
	case [2]int{1, 2}:
		return pick(array, f, 2, func(s []float32) gldraw.Vec2 { return gldraw.Vec2(s) }, func(v []gldraw.Vec2) gldraw.Value { return gldraw.Vec2s(v) }), nil
	case [2]int{1, 3}:
		return pick(array, f, 3, func(s []float32) gldraw.Vec3 { return gldraw.Vec3(s) }, func(v []gldraw.Vec3) gldraw.Value { return gldraw.Vec3s(v) }), nil
	case [2]int{1, 4}:
		return pick(array, f, 4, func(s []float32) gldraw.Vec4 { return gldraw.Vec4(s) }, func(v []gldraw.Vec4) gldraw.Value { return gldraw.Vec4s(v) }), nil
	case [2]int{2, 2}:
		return pick(array, f, 4, func(s []float32) gldraw.Mat2 { return gldraw.Mat2(s) }, func(v []gldraw.Mat2) gldraw.Value { return gldraw.Mat2s(v) }), nil
	case [2]int{3, 3}:
		return pick(array, f, 9, func(s []float32) gldraw.Mat3 { return gldraw.Mat3(s) }, func(v []gldraw.Mat3) gldraw.Value { return gldraw.Mat3s(v) }), nil
	case [2]int{4, 4}:
		return pick(array, f, 16, func(s []float32) gldraw.Mat4 { return gldraw.Mat4(s) }, func(v []gldraw.Mat4) gldraw.Value { return gldraw.Mat4s(v) }), nil
	case [2]int{2, 3}:
		return pick(array, f, 6, func(s []float32) gldraw.Mat2x3 { return gldraw.Mat2x3(s) }, func(v []gldraw.Mat2x3) gldraw.Value { return gldraw.Mat2x3s(v) }), nil
	case [2]int{3, 2}:
		return pick(array, f, 6, func(s []float32) gldraw.Mat3x2 { return gldraw.Mat3x2(s) }, func(v []gldraw.Mat3x2) gldraw.Value { return gldraw.Mat3x2s(v) }), nil
	case [2]int{2, 4}:
		return pick(array, f, 8, func(s []float32) gldraw.Mat2x4 { return gldraw.Mat2x4(s) }, func(v []gldraw.Mat2x4) gldraw.Value { return gldraw.Mat2x4s(v) }), nil
	case [2]int{4, 2}:
		return pick(array, f, 8, func(s []float32) gldraw.Mat4x2 { return gldraw.Mat4x2(s) }, func(v []gldraw.Mat4x2) gldraw.Value { return gldraw.Mat4x2s(v) }), nil
	case [2]int{3, 4}:
		return pick(array, f, 12, func(s []float32) gldraw.Mat3x4 { return gldraw.Mat3x4(s) }, func(v []gldraw.Mat3x4) gldraw.Value { return gldraw.Mat3x4s(v) }), nil
	case [2]int{4, 3}:
		return pick(array, f, 12, func(s []float32) gldraw.Mat4x3 { return gldraw.Mat4x3(s) }, func(v []gldraw.Mat4x3) gldraw.Value { return gldraw.Mat4x3s(v) }), nil
	}
	return nil, fmt.Errorf("%w: unsupported float shape %dx%d", ErrInvalid, t.Columns, t.Rows)
}

func intValue(t glcore.Type, array bool, v []int32) gldraw.Value {
	switch t.Rows {
	case 2:
		return pick(array, v, 2, func(s []int32) gldraw.IVec2 { return gldraw.IVec2(s) }, func(e []gldraw.IVec2) gldraw.Value { return gldraw.IVec2s(e) })
	case 3:
		return pick(array, v, 3, func(s []int32) gldraw.IVec3 { return gldraw.IVec3(s) }, func(e []gldraw.IVec3) gldraw.Value { return gldraw.IVec3s(e) })
	case 4:
		return pick(array, v, 4, func(s []int32) gldraw.IVec4 { return gldraw.IVec4(s) }, func(e []gldraw.IVec4) gldraw.Value { return gldraw.IVec4s(e) })
	}
	if array {
		return gldraw.Ints(v)
	}
	return gldraw.Int(v[0])
}

func uintValue(t glcore.Type, array bool, v []uint32) gldraw.Value {
	switch t.Rows {
	case 2:
		return pick(array, v, 2, func(s []uint32) gldraw.UVec2 { return gldraw.UVec2(s) }, func(e []gldraw.UVec2) gldraw.Value { return gldraw.UVec2s(e) })
	case 3:
		return pick(array, v, 3, func(s []uint32) gldraw.UVec3 { return gldraw.UVec3(s) }, func(e []gldraw.UVec3) gldraw.Value { return gldraw.UVec3s(e) })
	case 4:
		return pick(array, v, 4, func(s []uint32) gldraw.UVec4 { return gldraw.UVec4(s) }, func(e []gldraw.UVec4) gldraw.Value { return gldraw.UVec4s(e) })
	}
	if array {
		return gldraw.Uints(v)
	}
	return gldraw.Uint(v[0])
}

// pick returns the single element built by one, or all elements wrapped by
// many when array is set.
func pick[E, S any](array bool, flat []S, width int, one func([]S) E, many func([]E) gldraw.Value) gldraw.Value {
	if !array {
		v := one(flat[:width])
		return any(v).(gldraw.Value)
	}
	return many(split(flat, width, one))
}
