package gldraw

import (
	"github.com/gogpu/gldraw/glcore"
)

// Command is a finalized draw command. Draw replays it against the device
// it was built for with no lookups; it may be called any number of times.
//
// A Command built without a shader pair has no program and Draw does
// nothing.
type Command struct {
	dev     glcore.Device
	program glcore.ProgramID
	vao     VertexArray
	setters []*UniformSetter
	prim    Primitive
	count   int32

	// owned buffers are deleted by Release.
	owned []glcore.BufferID
}

// Draw binds the program and vertex array, runs every uniform setter
// against env in order, then issues the draw. If a setter fails the draw
// is not issued and the error is returned.
func (c *Command) Draw(env FrameEnvironment) error {
	if c.program == glcore.InvalidID {
		return nil
	}
	c.dev.UseProgram(c.program)
	c.dev.BindVertexArray(c.vao.ID)
	for _, s := range c.setters {
		if err := s.Set(c.dev, env); err != nil {
			return err
		}
	}
	if c.vao.Indexed() {
		c.dev.DrawElements(c.prim.Mode(), c.count, glcore.UnsignedInt, 0)
	} else {
		c.dev.DrawArrays(c.prim.Mode(), 0, c.count)
	}
	return nil
}

// Release deletes the program, the vertex array and the buffers uploaded
// by the builder. Buffers bound with AttributeBuffer belong to the caller
// and are kept. After Release, Draw does nothing. Calling it twice is
// harmless.
func (c *Command) Release() {
	if c.dev == nil {
		return
	}
	if c.vao.ID != glcore.InvalidID {
		c.dev.DeleteVertexArray(c.vao.ID)
	}
	if c.program != glcore.InvalidID {
		c.dev.DeleteProgram(c.program)
	}
	for _, id := range c.owned {
		c.dev.DeleteBuffer(id)
	}
	c.program = glcore.InvalidID
	c.vao = VertexArray{}
	c.setters = nil
	c.owned = nil
}

// IsNoop reports whether Draw does nothing.
func (c *Command) IsNoop() bool { return c.program == glcore.InvalidID }

// Program returns the linked program, or glcore.InvalidID for a no-op
// command.
func (c *Command) Program() glcore.ProgramID { return c.program }

// VertexArray returns the vertex array the command binds.
func (c *Command) VertexArray() VertexArray { return c.vao }

// Primitive returns the primitive kind of the draw.
func (c *Command) Primitive() Primitive { return c.prim }

// Count returns the number of vertices or indices drawn.
func (c *Command) Count() int { return int(c.count) }

// Uniforms returns the uniforms set on each Draw, in setting order.
func (c *Command) Uniforms() []UniformInfo {
	out := make([]UniformInfo, len(c.setters))
	for i, s := range c.setters {
		out[i] = s.info
	}
	return out
}
