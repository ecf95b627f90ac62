package uniforms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/gldraw"
)

// Projection is a provider whose matrix depends only on the viewport size.
// It recomputes when the size changes and returns the cached matrix
// otherwise. A Projection belongs to one command and is not safe for
// concurrent use, like the command itself.
type Projection struct {
	build func(aspect float32) gldraw.Mat4

	width, height uint32
	valid         bool
	m             gldraw.Mat4

	// Rebuilds counts matrix recomputations.
	Rebuilds int
}

// Compute implements gldraw.Provider.
func (p *Projection) Compute(env gldraw.FrameEnvironment) gldraw.Value {
	if !p.valid || env.ViewportWidth != p.width || env.ViewportHeight != p.height {
		p.m = p.build(env.Aspect())
		p.width, p.height = env.ViewportWidth, env.ViewportHeight
		p.valid = true
		p.Rebuilds++
	}
	return p.m
}

// Perspective returns a right-handed perspective projection with vertical
// field of view fovy (radians) and clip planes near and far.
func Perspective(fovy, near, far float32) *Projection {
	return &Projection{build: func(aspect float32) gldraw.Mat4 {
		return perspective(fovy, aspect, near, far)
	}}
}

// Orthographic returns a projection mapping x in [-aspect, aspect] and y in
// [-1, 1] to clip space, so unit geometry keeps its proportions.
func Orthographic() *Projection {
	return &Projection{build: func(aspect float32) gldraw.Mat4 {
		return orthographic(-aspect, aspect, -1, 1, -1, 1)
	}}
}

func perspective(fovy, aspect, near, far float32) gldraw.Mat4 {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)
	return gldraw.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

func orthographic(left, right, bottom, top, near, far float32) gldraw.Mat4 {
	return gldraw.Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
