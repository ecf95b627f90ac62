package main

import (
	"github.com/gogpu/gldraw"
	"github.com/gogpu/gldraw/uniforms"
)

const triangleVert = `#version 330 core
in vec2 position;
in vec3 color;
uniform mat4 projection;
uniform mat4 rotation;
out vec3 v_color;
void main() {
	v_color = color;
	gl_Position = projection * rotation * vec4(position, 0.0, 1.0);
}
`

const triangleFrag = `#version 330 core
in vec3 v_color;
uniform float pulse;
out vec4 frag_color;
void main() {
	frag_color = vec4(v_color * (0.5 + 0.5 * pulse), 1.0);
}
`

// triangle builds the default scene: a colored triangle spinning at one
// radian per second and pulsing twice a second.
func triangle(ctx *gldraw.Context) (*gldraw.Command, error) {
	return ctx.Draw().
		Vert(triangleVert).
		Frag(triangleFrag).
		Attribute("position", gldraw.Vec2s{{-0.6, -0.5}, {0.6, -0.5}, {0, 0.6}}).
		Attribute("color", gldraw.Vec3s{{1, 0.2, 0.2}, {0.2, 1, 0.2}, {0.2, 0.2, 1}}).
		Uniform("projection", uniforms.Orthographic()).
		Uniform("rotation", uniforms.RotationZ(1)).
		Uniform("pulse", uniforms.Oscillate(2)).
		Count(3).
		Finalize()
}
