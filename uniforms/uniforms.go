// Package uniforms provides ready-made uniform providers driven by the
// frame environment: clock, tick counter, viewport size and the usual
// projection and animation matrices.
//
// Matrices are column-major, matching what gldraw uploads with
// transpose disabled.
package uniforms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/gldraw"
)

// Time yields the elapsed seconds as a float.
func Time() gldraw.Provider {
	return gldraw.ProviderFunc(func(env gldraw.FrameEnvironment) gldraw.Value {
		return gldraw.Float(env.ElapsedTime)
	})
}

// Tick yields the frame counter as a uint. It wraps at 2^32.
func Tick() gldraw.Provider {
	return gldraw.ProviderFunc(func(env gldraw.FrameEnvironment) gldraw.Value {
		return gldraw.Uint(uint32(env.FrameTick))
	})
}

// Viewport yields the framebuffer size in pixels as a vec2.
func Viewport() gldraw.Provider {
	return gldraw.ProviderFunc(func(env gldraw.FrameEnvironment) gldraw.Value {
		return gldraw.Vec2{float32(env.ViewportWidth), float32(env.ViewportHeight)}
	})
}

// Aspect yields width/height as a float.
func Aspect() gldraw.Provider {
	return gldraw.ProviderFunc(func(env gldraw.FrameEnvironment) gldraw.Value {
		return gldraw.Float(env.Aspect())
	})
}

// Oscillate yields 0.5+0.5*sin(2*pi*freq*t), a float in [0, 1].
func Oscillate(freq float32) gldraw.Provider {
	return gldraw.ProviderFunc(func(env gldraw.FrameEnvironment) gldraw.Value {
		phase := 2 * math32.Pi * freq * float32(env.ElapsedTime)
		return gldraw.Float(0.5 + 0.5*math32.Sin(phase))
	})
}

// RotationZ yields a mat4 rotating by speed radians per second around the
// Z axis.
func RotationZ(speed float32) gldraw.Provider {
	return gldraw.ProviderFunc(func(env gldraw.FrameEnvironment) gldraw.Value {
		return rotationZ(speed * float32(env.ElapsedTime))
	})
}

func rotationZ(angle float32) gldraw.Mat4 {
	s, c := math32.Sincos(angle)
	return gldraw.Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Identity is the 4x4 identity matrix.
var Identity = gldraw.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}
