package gldraw

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gldraw/glcore"
	"github.com/gogpu/gldraw/headless"
)

func uniformInfo(name string, typ glcore.Enum, size int) UniformInfo {
	t := glcore.TypeOf(typ)
	return UniformInfo{Name: name, Type: typ, Scalar: t.Scalar, Columns: t.Columns, Rows: t.Rows, Size: size}
}

func TestUniformSetterCheck(t *testing.T) {
	tests := []struct {
		name string
		info UniformInfo
		v    Value
		ok   bool
	}{
		{"float", uniformInfo("f", glcore.Float, 1), Float(1), true},
		{"vec3 into vec4", uniformInfo("v", glcore.FloatVec4, 1), Vec3{}, false},
		{"vec4", uniformInfo("v", glcore.FloatVec4, 1), Vec4{}, true},
		{"int into float", uniformInfo("f", glcore.Float, 1), Int(1), false},
		{"float into int", uniformInfo("i", glcore.Int, 1), Float(1), false},
		{"int into bool", uniformInfo("b", glcore.Bool, 1), Int(1), true},
		{"uint into bool", uniformInfo("b", glcore.Bool, 1), Uint(1), true},
		{"float into bool", uniformInfo("b", glcore.Bool, 1), Float(1), false},
		{"int into sampler", uniformInfo("s", glcore.Sampler2D, 1), Int(0), true},
		{"uint into int", uniformInfo("i", glcore.Int, 1), Uint(1), false},
		{"uvec2", uniformInfo("u", glcore.UnsignedIntVec2, 1), UVec2{}, true},
		{"mat4", uniformInfo("m", glcore.FloatMat4, 1), Mat4{}, true},
		{"mat3 into mat4", uniformInfo("m", glcore.FloatMat4, 1), Mat3{}, false},
		{"mat3x4 into mat4x3", uniformInfo("m", glcore.FloatMat4x3, 1), Mat3x4{}, false},
		{"mat4x3", uniformInfo("m", glcore.FloatMat4x3, 1), Mat4x3{}, true},
		{"full array", uniformInfo("w", glcore.Float, 3), Floats{1, 2, 3}, true},
		{"short array", uniformInfo("w", glcore.Float, 3), Floats{1}, true},
		{"long array", uniformInfo("w", glcore.Float, 3), Floats{1, 2, 3, 4}, false},
		{"empty array", uniformInfo("w", glcore.Float, 3), Floats{}, false},
		{"single into array", uniformInfo("w", glcore.Float, 3), Float(1), false},
		{"array into single", uniformInfo("f", glcore.Float, 1), Floats{1}, true},
		{"mat2 array", uniformInfo("m", glcore.FloatMat2, 2), Mat2s{{}, {}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &UniformSetter{info: tt.info}
			err := s.check(tt.v.Shape())
			if tt.ok && err != nil {
				t.Errorf("check() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrUniformMismatch) {
				t.Errorf("check() error = %v, want ErrUniformMismatch", err)
			}
		})
	}
}

func TestUniformSetterDispatch(t *testing.T) {
	dev := headless.New()
	prog := linkTestProgram(t, dev, sceneVert, sceneFrag)
	uniforms := ReflectUniforms(dev, prog)

	proj := Mat4{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	setters := MatchUniforms(uniforms, map[string]Provider{
		"projection": Const(proj),
		"time":       Const(Float(0.25)),
		"tint":       Const(Vec3{0.1, 0.2, 0.3}),
		"mode":       Const(Int(-2)),
		"flags":      Const(Uint(9)),
		"weights":    Const(Floats{1, 2}),
	})
	if len(setters) != 6 {
		t.Fatalf("MatchUniforms() matched %d, want 6", len(setters))
	}

	dev.UseProgram(prog)
	dev.ResetCalls()
	for _, s := range setters {
		if err := s.Set(dev, FrameEnvironment{}); err != nil {
			t.Fatalf("Set(%s) error = %v", s.Info().Name, err)
		}
	}
	checkNoGLError(t, dev)

	want := []string{"UniformMatrix4fv", "Uniform1fv", "Uniform3fv", "Uniform1iv", "Uniform1uiv", "Uniform1fv"}
	if got := dev.CallNames(); !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}

	if got, _ := dev.UniformFloats(prog, "projection"); !slices.Equal(got, proj[:]) {
		t.Errorf("projection = %v", got)
	}
	if got, _ := dev.UniformInts(prog, "mode"); !slices.Equal(got, []int32{-2}) {
		t.Errorf("mode = %v", got)
	}
	if got, _ := dev.UniformUints(prog, "flags"); !slices.Equal(got, []uint32{9}) {
		t.Errorf("flags = %v", got)
	}
	if got, _ := dev.UniformFloats(prog, "weights"); !slices.Equal(got, []float32{1, 2, 0}) {
		t.Errorf("weights = %v", got)
	}
}

func TestUniformSetterMismatchSkipsUpload(t *testing.T) {
	dev := headless.New()
	s := &UniformSetter{info: uniformInfo("time", glcore.Float, 1), provider: Const(Vec2{1, 2})}
	err := s.Set(dev, FrameEnvironment{})
	if !errors.Is(err, ErrUniformMismatch) {
		t.Fatalf("Set() error = %v, want ErrUniformMismatch", err)
	}
	if !containsAll(err.Error(), "time", "float", "vec2") {
		t.Errorf("error %q should name uniform and both shapes", err)
	}
	if n := len(dev.Calls()); n != 0 {
		t.Errorf("device saw %d calls, want none", n)
	}

	nilProvider := &UniformSetter{info: uniformInfo("time", glcore.Float, 1), provider: ProviderFunc(func(FrameEnvironment) Value { return nil })}
	if err := nilProvider.Set(dev, FrameEnvironment{}); !errors.Is(err, ErrUniformMismatch) {
		t.Errorf("Set(nil value) error = %v, want ErrUniformMismatch", err)
	}
}

func TestMatchUniformsOrderAndSkips(t *testing.T) {
	uniforms := []UniformInfo{
		uniformInfo("b", glcore.Float, 1),
		uniformInfo("a", glcore.Float, 1),
		uniformInfo("c", glcore.Float, 1),
	}
	setters := MatchUniforms(uniforms, map[string]Provider{
		"a":       Const(Float(1)),
		"b":       Const(Float(2)),
		"missing": Const(Float(3)),
	})
	var names []string
	for _, s := range setters {
		names = append(names, s.Info().Name)
	}
	if !slices.Equal(names, []string{"b", "a"}) {
		t.Errorf("setters = %v, want reflection order b,a", names)
	}
}
