package gldraw

// appendFloats appends the scalars of a float-kind value to dst in element
// order, column-major for matrices. Values of other kinds append nothing.
func appendFloats(dst []float32, v Value) []float32 {
	switch v := v.(type) {
	case Float:
		return append(dst, float32(v))
	case Vec2:
		return append(dst, v[:]...)
	case Vec3:
		return append(dst, v[:]...)
	case Vec4:
		return append(dst, v[:]...)
	case Mat2:
		return append(dst, v[:]...)
	case Mat3:
		return append(dst, v[:]...)
	case Mat4:
		return append(dst, v[:]...)
	case Mat2x3:
		return append(dst, v[:]...)
	case Mat3x2:
		return append(dst, v[:]...)
	case Mat2x4:
		return append(dst, v[:]...)
	case Mat4x2:
		return append(dst, v[:]...)
	case Mat3x4:
		return append(dst, v[:]...)
	case Mat4x3:
		return append(dst, v[:]...)
	case Floats:
		return append(dst, v...)
	case Vec2s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Vec3s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Vec4s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat2s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat3s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat4s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat2x3s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat3x2s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat2x4s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat4x2s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat3x4s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case Mat4x3s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	}
	return dst
}

// appendInts appends the scalars of an int-kind value to dst.
func appendInts(dst []int32, v Value) []int32 {
	switch v := v.(type) {
	case Int:
		return append(dst, int32(v))
	case IVec2:
		return append(dst, v[:]...)
	case IVec3:
		return append(dst, v[:]...)
	case IVec4:
		return append(dst, v[:]...)
	case Ints:
		return append(dst, v...)
	case IVec2s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case IVec3s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case IVec4s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	}
	return dst
}

// appendUints appends the scalars of a uint-kind value to dst.
func appendUints(dst []uint32, v Value) []uint32 {
	switch v := v.(type) {
	case Uint:
		return append(dst, uint32(v))
	case UVec2:
		return append(dst, v[:]...)
	case UVec3:
		return append(dst, v[:]...)
	case UVec4:
		return append(dst, v[:]...)
	case Uints:
		return append(dst, v...)
	case UVec2s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case UVec3s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	case UVec4s:
		for i := range v {
			dst = append(dst, v[i][:]...)
		}
		return dst
	}
	return dst
}
