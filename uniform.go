package gldraw

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gldraw/glcore"
)

// UniformSetter pushes the value of one provider to one uniform. It is
// produced by MatchUniforms and run by Command.Draw once per invocation.
//
// The scratch slices are reused across calls, so after the first frame a
// setter does not allocate.
type UniformSetter struct {
	info     UniformInfo
	provider Provider

	floats []float32
	ints   []int32
	uints  []uint32
}

// Info returns the reflected uniform the setter writes.
func (s *UniformSetter) Info() UniformInfo { return s.info }

// Set computes the provider's value for env and uploads it. A value whose
// shape does not fit the uniform is not uploaded and yields an error
// wrapping ErrUniformMismatch.
func (s *UniformSetter) Set(dev glcore.Device, env FrameEnvironment) error {
	v := s.provider.Compute(env)
	if v == nil {
		return fmt.Errorf("%w: %q: provider returned nil", ErrUniformMismatch, s.info.Name)
	}
	shape := v.Shape()
	if err := s.check(shape); err != nil {
		return err
	}

	loc := s.info.Location
	switch shape.Scalar {
	case glcore.ScalarFloat:
		s.floats = appendFloats(s.floats[:0], v)
		if shape.Columns > 1 {
			dev.UniformMatrixfv(loc, shape.Columns, shape.Rows, s.floats)
		} else {
			dev.Uniformfv(loc, shape.Rows, s.floats)
		}
	case glcore.ScalarInt:
		s.ints = appendInts(s.ints[:0], v)
		dev.Uniformiv(loc, shape.Rows, s.ints)
	case glcore.ScalarUint:
		s.uints = appendUints(s.uints[:0], v)
		dev.Uniformuiv(loc, shape.Rows, s.uints)
	}
	return nil
}

// check compares a value shape with the reflected uniform. It runs on every
// Set since a provider may change shape between frames.
func (s *UniformSetter) check(shape Shape) error {
	u := s.info
	ok := shape.Columns == u.Columns && shape.Rows == u.Rows && scalarAssignable(shape.Scalar, u.Scalar)
	if shape.Array {
		ok = ok && shape.Count >= 1 && shape.Count <= u.Size
	} else {
		ok = ok && u.Size == 1
	}
	if ok {
		return nil
	}
	want := glcore.TypeName(u.Type)
	if u.Size > 1 {
		want = fmt.Sprintf("%s[%d]", want, u.Size)
	}
	return fmt.Errorf("%w: %q is %s, value is %s", ErrUniformMismatch, u.Name, want, shape)
}

// scalarAssignable reports whether values of kind v may be written to a
// uniform of kind slot.
func scalarAssignable(v, slot glcore.ScalarKind) bool {
	switch v {
	case glcore.ScalarFloat:
		return slot == glcore.ScalarFloat
	case glcore.ScalarInt:
		return slot == glcore.ScalarInt || slot == glcore.ScalarBool || slot == glcore.ScalarSampler
	case glcore.ScalarUint:
		return slot == glcore.ScalarUint || slot == glcore.ScalarBool
	}
	return false
}

// MatchUniforms pairs reflected uniforms with providers by name. The result
// follows the order of uniforms. Uniforms without a provider and providers
// without a uniform are skipped.
func MatchUniforms(uniforms []UniformInfo, providers map[string]Provider) []*UniformSetter {
	return matchUniforms(Logger(), uniforms, providers)
}

func matchUniforms(log *slog.Logger, uniforms []UniformInfo, providers map[string]Provider) []*UniformSetter {
	setters := make([]*UniformSetter, 0, len(providers))
	matched := 0
	for _, u := range uniforms {
		p, ok := providers[u.Name]
		if !ok {
			log.Debug("gldraw: uniform has no provider", "name", u.Name)
			continue
		}
		setters = append(setters, &UniformSetter{info: u, provider: p})
		matched++
	}
	if matched < len(providers) {
		for name := range providers {
			if !hasUniform(uniforms, name) {
				log.Debug("gldraw: provider has no active uniform", "name", name)
			}
		}
	}
	return setters
}

func hasUniform(uniforms []UniformInfo, name string) bool {
	for _, u := range uniforms {
		if u.Name == name {
			return true
		}
	}
	return false
}
