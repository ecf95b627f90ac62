package uniforms

import (
	"math"
	"testing"

	"github.com/gogpu/gldraw"
	"github.com/gogpu/gldraw/headless"
)

const eps = 1e-5

func near(a, b float32) bool { return math.Abs(float64(a-b)) < eps }

func TestScalarProviders(t *testing.T) {
	env := gldraw.FrameEnvironment{ElapsedTime: 2.5, FrameTick: 41, ViewportWidth: 800, ViewportHeight: 400}

	tests := []struct {
		name     string
		provider gldraw.Provider
		want     gldraw.Value
	}{
		{"time", Time(), gldraw.Float(2.5)},
		{"tick", Tick(), gldraw.Uint(41)},
		{"viewport", Viewport(), gldraw.Vec2{800, 400}},
		{"aspect", Aspect(), gldraw.Float(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.provider.Compute(env); got != tt.want {
				t.Errorf("Compute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAspectEmptyViewport(t *testing.T) {
	if got := Aspect().Compute(gldraw.FrameEnvironment{}); got != gldraw.Float(1) {
		t.Errorf("Compute() = %v, want 1", got)
	}
}

func TestOscillate(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float32
	}{
		{0, 0.5},
		{0.25, 1},
		{0.5, 0.5},
		{0.75, 0},
	}
	p := Oscillate(1)
	for _, tt := range tests {
		got := p.Compute(gldraw.FrameEnvironment{ElapsedTime: tt.elapsed}).(gldraw.Float)
		if !near(float32(got), tt.want) {
			t.Errorf("Oscillate(1) at %v = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestRotationZ(t *testing.T) {
	p := RotationZ(math.Pi / 2)

	if got := p.Compute(gldraw.FrameEnvironment{}); got != Identity {
		t.Errorf("at t=0 = %v, want identity", got)
	}

	m := p.Compute(gldraw.FrameEnvironment{ElapsedTime: 1}).(gldraw.Mat4)
	// A quarter turn maps +X to +Y.
	want := gldraw.Mat4{0, 1, 0, 0, -1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	for i := range m {
		if !near(m[i], want[i]) {
			t.Fatalf("m = %v, want %v", m, want)
		}
	}
}

func TestPerspective(t *testing.T) {
	p := Perspective(math.Pi/2, 1, 11)
	m := p.Compute(gldraw.FrameEnvironment{ViewportWidth: 200, ViewportHeight: 100}).(gldraw.Mat4)

	checks := []struct {
		index int
		want  float32
	}{
		{0, 0.5},
		{5, 1},
		{10, -1.2},
		{11, -1},
		{14, -2.2},
		{15, 0},
	}
	for _, c := range checks {
		if !near(m[c.index], c.want) {
			t.Errorf("m[%d] = %v, want %v", c.index, m[c.index], c.want)
		}
	}
}

func TestProjectionRebuildsOnResize(t *testing.T) {
	p := Perspective(1, 0.1, 100)
	frames := []struct {
		w, h     uint32
		rebuilds int
	}{
		{640, 480, 1},
		{640, 480, 1},
		{640, 480, 1},
		{800, 480, 2},
		{800, 600, 3},
		{800, 600, 3},
	}
	for i, f := range frames {
		env := gldraw.FrameEnvironment{ElapsedTime: float64(i), FrameTick: uint64(i), ViewportWidth: f.w, ViewportHeight: f.h}
		first := p.Compute(env)
		if p.Rebuilds != f.rebuilds {
			t.Errorf("frame %d: Rebuilds = %d, want %d", i, p.Rebuilds, f.rebuilds)
		}
		if again := p.Compute(env); again != first {
			t.Errorf("frame %d: repeated Compute differs", i)
		}
	}
}

func TestOrthographic(t *testing.T) {
	m := Orthographic().Compute(gldraw.FrameEnvironment{ViewportWidth: 300, ViewportHeight: 150}).(gldraw.Mat4)
	want := gldraw.Mat4{0.5, 0, 0, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 1}
	for i := range m {
		if !near(m[i], want[i]) {
			t.Fatalf("m = %v, want %v", m, want)
		}
	}
}

const spinVert = `#version 330 core
in vec2 position;
uniform mat4 projection;
uniform mat4 rotation;
void main() {
	gl_Position = projection * rotation * vec4(position, 0.0, 1.0);
}
`

const pulseFrag = `#version 330 core
uniform float pulse;
uniform uint tick;
out vec4 color;
void main() {
	color = vec4(pulse, float(tick), 0.0, 1.0);
}
`

func TestProvidersDriveCommand(t *testing.T) {
	dev := headless.New()
	proj := Orthographic()
	cmd, err := gldraw.NewContext(dev).Draw().
		Vert(spinVert).
		Frag(pulseFrag).
		Attribute("position", gldraw.Vec2s{{0, 0}, {1, 0}, {0, 1}}).
		Uniform("projection", proj).
		Uniform("rotation", RotationZ(1)).
		Uniform("pulse", Oscillate(2)).
		Uniform("tick", Tick()).
		Count(3).
		Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	for i := range 3 {
		env := gldraw.FrameEnvironment{ElapsedTime: float64(i) * 0.1, FrameTick: uint64(i), ViewportWidth: 640, ViewportHeight: 480}
		if err := cmd.Draw(env); err != nil {
			t.Fatalf("Draw() frame %d error = %v", i, err)
		}
	}
	if proj.Rebuilds != 1 {
		t.Errorf("projection Rebuilds = %d, want 1", proj.Rebuilds)
	}
	if ticks, _ := dev.UniformUints(cmd.Program(), "tick"); len(ticks) != 1 || ticks[0] != 2 {
		t.Errorf("tick = %v, want [2]", ticks)
	}
	if got := len(dev.CallsNamed("UniformMatrix4fv")); got != 6 {
		t.Errorf("UniformMatrix4fv calls = %d, want 6", got)
	}
}

func BenchmarkPerspective(b *testing.B) {
	p := Perspective(1, 0.1, 100)
	env := gldraw.FrameEnvironment{ViewportWidth: 1920, ViewportHeight: 1080}
	for b.Loop() {
		env.FrameTick++
		_ = p.Compute(env)
	}
}
