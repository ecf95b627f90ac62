package gldraw

import (
	"testing"

	"github.com/gogpu/gldraw/glcore"
	"github.com/gogpu/gldraw/headless"
)

func TestTimeUniformScenario(t *testing.T) {
	ctx, dev := newTestContext(t)
	cmd := mustFinalize(t, ctx.Draw().
		Vert(triangleVert).
		Frag(timeFrag).
		Attribute("position", Vec2s{{0, 0}, {1, 0}, {0, 1}}).
		Uniform("time", ProviderFunc(func(env FrameEnvironment) Value {
			return Float(env.ElapsedTime)
		})).
		Count(3))

	var last float32 = -1
	for i, elapsed := range []float64{0, 0.016, 0.5, 1.75} {
		dev.ResetCalls()
		if err := cmd.Draw(FrameEnvironment{ElapsedTime: elapsed, FrameTick: uint64(i)}); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		sets := dev.CallsNamed("Uniform1fv")
		if len(sets) != 1 || len(dev.CallsNamed("DrawArrays")) != 1 {
			t.Fatalf("frame %d calls = %v, want one Uniform1fv and one draw", i, dev.CallNames())
		}
		got := sets[0].Floats[0]
		if got != float32(elapsed) {
			t.Errorf("frame %d time = %v, want %v", i, got, elapsed)
		}
		if got <= last {
			t.Errorf("frame %d time %v did not increase from %v", i, got, last)
		}
		last = got

		stored, _ := dev.UniformFloats(cmd.Program(), "time")
		if stored[0] != got {
			t.Errorf("stored time = %v, want %v", stored[0], got)
		}
	}
	checkNoGLError(t, dev)
}

func TestCommandAccessors(t *testing.T) {
	ctx, _ := newTestContext(t)
	cmd := mustFinalize(t, ctx.Draw().
		Vert(sceneVert).
		Frag(sceneFrag).
		Uniform("tint", Const(Vec3{})).
		Uniform("projection", Const(Mat4{})).
		Primitive(Points).
		Count(7))

	if cmd.Primitive() != Points || cmd.Count() != 7 {
		t.Errorf("Primitive() = %v, Count() = %d", cmd.Primitive(), cmd.Count())
	}
	var names []string
	for _, u := range cmd.Uniforms() {
		names = append(names, u.Name)
	}
	if len(names) != 2 || names[0] != "projection" || names[1] != "tint" {
		t.Errorf("Uniforms() = %v, want reflection order projection,tint", names)
	}
}

// drawOnlyDevice accepts the calls Command.Draw makes and nothing else.
// Unlike the headless device it does not record, so it allocates nothing.
type drawOnlyDevice struct {
	glcore.Device
	draws    int
	uniforms int
}

func (d *drawOnlyDevice) UseProgram(glcore.ProgramID)                          {}
func (d *drawOnlyDevice) BindVertexArray(glcore.VertexArrayID)                 {}
func (d *drawOnlyDevice) Uniformfv(glcore.Location, int, []float32)            { d.uniforms++ }
func (d *drawOnlyDevice) Uniformiv(glcore.Location, int, []int32)              { d.uniforms++ }
func (d *drawOnlyDevice) Uniformuiv(glcore.Location, int, []uint32)            { d.uniforms++ }
func (d *drawOnlyDevice) UniformMatrixfv(glcore.Location, int, int, []float32) { d.uniforms++ }
func (d *drawOnlyDevice) DrawArrays(glcore.Enum, int32, int32)                 { d.draws++ }
func (d *drawOnlyDevice) DrawElements(glcore.Enum, int32, glcore.Enum, int)    { d.draws++ }

func TestDrawDoesNotAllocate(t *testing.T) {
	ctx, _ := newTestContext(t)
	cmd := mustFinalize(t, ctx.Draw().
		Vert(sceneVert).
		Frag(sceneFrag).
		Attribute("position", Vec3s{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}).
		Uniform("projection", Const(Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1})).
		Uniform("time", Const(Float(0.5))).
		Uniform("tint", Const(Vec3{1, 1, 1})).
		Uniform("mode", Const(Int(1))).
		Uniform("flags", Const(Uint(3))).
		Uniform("weights", Const(Floats{1, 2, 3})).
		Elements(TriangleIndices{{0, 1, 2}}))

	dev := &drawOnlyDevice{}
	cmd.dev = dev
	env := FrameEnvironment{ElapsedTime: 1, ViewportWidth: 640, ViewportHeight: 480}
	allocs := testing.AllocsPerRun(100, func() {
		if err := cmd.Draw(env); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Errorf("Draw() allocates %v times per call, want 0", allocs)
	}
	if dev.uniforms != 6*dev.draws {
		t.Errorf("uniform sets = %d for %d draws, want 6 per draw", dev.uniforms, dev.draws)
	}
}

func BenchmarkCommandDraw(b *testing.B) {
	ctx := NewContext(headless.New())
	cmd, err := ctx.Draw().
		Vert(sceneVert).
		Frag(sceneFrag).
		Uniform("projection", Const(Mat4{})).
		Uniform("time", Const(Float(0.5))).
		Uniform("weights", Const(Floats{1, 2, 3})).
		Count(3).
		Finalize()
	if err != nil {
		b.Fatal(err)
	}
	cmd.dev = &drawOnlyDevice{}
	env := FrameEnvironment{ViewportWidth: 800, ViewportHeight: 600}

	b.ReportAllocs()
	for b.Loop() {
		if err := cmd.Draw(env); err != nil {
			b.Fatal(err)
		}
	}
}

func TestCommandRelease(t *testing.T) {
	ctx, dev := newTestContext(t)
	shared, err := UploadVertexData(dev, Vec2s{{0, 0}, {1, 0}, {0, 1}}, glcore.StaticDraw)
	if err != nil {
		t.Fatal(err)
	}
	cmd := mustFinalize(t, ctx.Draw().
		Vert(sceneVert).
		Frag(sceneFrag).
		Attribute("position", Vec3s{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}).
		AttributeBuffer("unused", shared).
		Elements(TriangleIndices{{0, 1, 2}}))

	if dev.ProgramCount() != 1 || dev.VertexArrayCount() != 1 || dev.BufferCount() != 3 {
		t.Fatalf("before Release: %d programs, %d vertex arrays, %d buffers",
			dev.ProgramCount(), dev.VertexArrayCount(), dev.BufferCount())
	}

	cmd.Release()
	if dev.ProgramCount() != 0 || dev.VertexArrayCount() != 0 {
		t.Errorf("after Release: %d programs, %d vertex arrays", dev.ProgramCount(), dev.VertexArrayCount())
	}
	if _, ok := dev.BufferContents(shared.ID); !ok || dev.BufferCount() != 1 {
		t.Errorf("Release must keep the caller's buffer only, BufferCount() = %d", dev.BufferCount())
	}
	if !cmd.IsNoop() {
		t.Error("released command should be a no-op")
	}

	dev.ResetCalls()
	cmd.Release()
	if err := cmd.Draw(FrameEnvironment{}); err != nil {
		t.Errorf("Draw() after Release error = %v", err)
	}
	if n := len(dev.Calls()); n != 0 {
		t.Errorf("released command issued %d calls: %v", n, dev.CallNames())
	}
	checkNoGLError(t, dev)
}

func TestReleaseNoopCommand(t *testing.T) {
	ctx, dev := newTestContext(t)
	cmd := mustFinalize(t, ctx.Draw().Attribute("position", Floats{1, 2, 3}))
	cmd.Release()
	if dev.BufferCount() != 0 {
		t.Errorf("BufferCount() = %d after Release, want 0", dev.BufferCount())
	}
	(&Command{}).Release()
}
