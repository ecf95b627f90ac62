package gldraw

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gldraw/glcore"
	"github.com/gogpu/gldraw/headless"
)

const triangleVert = `#version 330 core
in vec2 position;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}
`

const solidFrag = `#version 330 core
out vec4 color;
void main() {
	color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const timeFrag = `#version 330 core
uniform float time;
out vec4 color;
void main() {
	color = vec4(time, 0.0, 0.0, 1.0);
}
`

// sceneVert and sceneFrag use a matrix attribute and uniforms of every
// scalar kind.
const sceneVert = `#version 330 core
in vec3 position;
in vec3 normal;
in mat4 model;
uniform mat4 projection;
uniform float time;
uniform vec3 unusedColor;
out vec3 v_normal;
void main() {
	v_normal = normal * time;
	gl_Position = projection * model * vec4(position, 1.0);
}
`

const sceneFrag = `#version 330 core
in vec3 v_normal;
uniform vec3 tint;
uniform int mode;
uniform uint flags;
uniform float weights[3];
out vec4 color;
void main() {
	color = vec4(v_normal * tint * weights[0], float(mode) + float(flags));
}
`

const emptyShader = "void main() {}\n"

func newTestContext(t *testing.T, opts ...headless.Option) (*Context, *headless.Device) {
	t.Helper()
	dev := headless.New(opts...)
	return NewContext(dev), dev
}

func mustFinalize(t *testing.T, b *Builder) *Command {
	t.Helper()
	cmd, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cmd
}

func decodeFloats(raw []byte) []float32 {
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out
}

func decodeUint32s(raw []byte) []uint32 {
	out := make([]uint32, len(raw)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}
	return out
}

func checkNoGLError(t *testing.T, dev glcore.Device) {
	t.Helper()
	if e := dev.GetError(); e != glcore.NoError {
		t.Errorf("GetError() = 0x%04X, want NoError", uint32(e))
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
