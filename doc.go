// Package gldraw compiles declarative draw descriptions into reusable
// OpenGL draw commands.
//
// # Overview
//
// A draw is described with a Builder: shader sources, named vertex
// streams, named per-frame uniform providers, optional index data, the
// primitive kind and a vertex count. Finalize compiles and links the
// shaders, asks the linked program which attributes and uniforms it
// actually uses, and binds the description to them by name. The result is
// a Command whose Draw method only issues GL calls.
//
//	ctx := gldraw.NewContext(dev)
//	cmd, err := ctx.Draw().
//	    Vert(vertSrc).
//	    Frag(fragSrc).
//	    Attribute("position", gldraw.Vec2s{{-0.5, -0.5}, {0.5, -0.5}, {0, 0.5}}).
//	    Uniform("time", gldraw.ProviderFunc(func(env gldraw.FrameEnvironment) gldraw.Value {
//	        return gldraw.Float(env.ElapsedTime)
//	    })).
//	    Count(3).
//	    Finalize()
//	...
//	for frame := range frames {
//	    if err := cmd.Draw(frame); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Binding rules
//
// Matching is by name. A name declared on the builder that the program does
// not use is ignored, and so is an active input with no declared source.
// A value whose shape does not fit the reflected type is an error:
// attribute mismatches fail Finalize, uniform mismatches fail every Draw
// that computes one.
//
// # Values
//
// Value is a closed family of host types: Float, Vec2..Vec4, Int, IVec2..4,
// Uint, UVec2..4, the square and non-square float matrices, and a slice
// form of each (Floats, Vec2s, ..., Mat4x3s). Matrices are column-major
// and named matCxR like GLSL. Slice forms set uniform arrays and, as
// VertexData, serve as vertex streams.
//
// # Devices
//
// Every operation takes a glcore.Device explicitly. Package opengl
// implements it over a real GL 3.3 core context and package headless
// implements it in memory for tests; package driver picks one at runtime.
package gldraw
