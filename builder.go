package gldraw

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gldraw/glcore"
)

// Builder accumulates the description of one draw command. Configuration
// methods return the builder so calls can be chained; the first error is
// kept and reported by Finalize. A Builder is consumed by Finalize and
// every later call records ErrFinalized.
//
// Attribute and Elements upload immediately. Primitive must be set before
// Elements, since the upload checks index groups against it.
type Builder struct {
	dev   glcore.Device
	log   *slog.Logger
	usage glcore.Enum

	vert, frag       string
	hasVert, hasFrag bool

	buffers   map[string]Buffer
	providers map[string]Provider

	prim  Primitive
	elems *ElementBuffer
	count int

	// owned lists the buffers this builder uploaded. They pass to the
	// command, or are deleted when Finalize fails.
	owned []glcore.BufferID

	err  error
	done bool
}

// fail records err unless an earlier error is already kept.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// building reports whether configuration calls are still accepted.
func (b *Builder) building() bool {
	if b.done {
		b.fail(ErrFinalized)
		return false
	}
	return b.err == nil
}

// Vert sets the vertex shader source.
func (b *Builder) Vert(src string) *Builder {
	if b.building() {
		b.vert, b.hasVert = src, true
	}
	return b
}

// Frag sets the fragment shader source.
func (b *Builder) Frag(src string) *Builder {
	if b.building() {
		b.frag, b.hasFrag = src, true
	}
	return b
}

// Attribute uploads data and binds it to the vertex input called name.
// A later call with the same name replaces the binding.
func (b *Builder) Attribute(name string, data VertexData) *Builder {
	if !b.building() {
		return b
	}
	buf, err := UploadVertexData(b.dev, data, b.usage)
	if err != nil {
		b.fail(fmt.Errorf("attribute %q: %w", name, err))
		return b
	}
	b.buffers[name] = buf
	b.owned = append(b.owned, buf.ID)
	return b
}

// AttributeBuffer binds a buffer uploaded earlier to the vertex input
// called name. The same buffer may feed several commands.
func (b *Builder) AttributeBuffer(name string, buf Buffer) *Builder {
	if !b.building() {
		return b
	}
	if buf.ID == glcore.InvalidID {
		b.fail(fmt.Errorf("attribute %q: %w", name, ErrEmptyData))
		return b
	}
	b.buffers[name] = buf
	return b
}

// Uniform sets the provider computing the uniform called name each frame.
// A later call with the same name replaces the provider.
func (b *Builder) Uniform(name string, p Provider) *Builder {
	if !b.building() {
		return b
	}
	if p == nil {
		b.fail(fmt.Errorf("uniform %q: %w", name, ErrEmptyData))
		return b
	}
	b.providers[name] = p
	return b
}

// Primitive sets how vertices are assembled. It must precede Elements.
func (b *Builder) Primitive(p Primitive) *Builder {
	if !b.building() {
		return b
	}
	if b.elems != nil {
		b.fail(ErrPrimitiveAfterElements)
		return b
	}
	b.prim = p
	return b
}

// Elements uploads index data and switches the command to an indexed draw
// whose count is the number of indices.
func (b *Builder) Elements(e Elements) *Builder {
	if !b.building() {
		return b
	}
	eb, err := UploadIndexData(b.dev, e, b.prim, b.usage)
	if err != nil {
		b.fail(fmt.Errorf("elements: %w", err))
		return b
	}
	b.elems = &eb
	b.owned = append(b.owned, eb.ID)
	return b
}

// Count sets the number of vertices of a non-indexed draw. It is ignored
// once Elements has been called.
func (b *Builder) Count(n int) *Builder {
	if !b.building() {
		return b
	}
	if n < 0 {
		b.fail(fmt.Errorf("gldraw: negative vertex count %d", n))
		return b
	}
	b.count = n
	return b
}

// Err returns the first error recorded so far.
func (b *Builder) Err() error { return b.err }

// Finalize compiles and links the shaders, reflects the program, builds the
// vertex array and matches uniform providers. A builder lacking a vertex or
// fragment source yields a Command whose Draw does nothing.
//
// On error every buffer the builder uploaded is deleted.
func (b *Builder) Finalize() (*Command, error) {
	if b.done {
		b.fail(ErrFinalized)
		return nil, ErrFinalized
	}
	b.done = true
	cmd, err := b.finalize()
	if err != nil {
		b.discard()
		return nil, err
	}
	return cmd, nil
}

func (b *Builder) finalize() (*Command, error) {
	if b.err != nil {
		return nil, b.err
	}

	if !b.hasVert || !b.hasFrag {
		b.log.Debug("gldraw: no shader pair, command is a no-op",
			"vert", b.hasVert, "frag", b.hasFrag)
		return &Command{dev: b.dev, prim: b.prim, owned: b.owned}, nil
	}

	vert, err := CompileShader(b.dev, StageVertex, b.vert)
	if err != nil {
		return nil, err
	}
	frag, err := CompileShader(b.dev, StageFragment, b.frag)
	if err != nil {
		b.dev.DeleteShader(vert)
		return nil, err
	}
	prog, err := LinkProgram(b.dev, vert, frag)
	if err != nil {
		return nil, err
	}

	attrs := ReflectAttributes(b.dev, prog)
	uniforms := ReflectUniforms(b.dev, prog)

	vao, err := bindAttributes(b.dev, b.log, attrs, b.buffers, b.elems)
	if err != nil {
		b.dev.DeleteProgram(prog)
		return nil, err
	}
	setters := matchUniforms(b.log, uniforms, b.providers)

	cmd := &Command{
		dev:     b.dev,
		program: prog,
		vao:     vao,
		setters: setters,
		prim:    b.prim,
		count:   int32(b.count),
		owned:   b.owned,
	}
	if b.elems != nil {
		cmd.count = int32(b.elems.Count)
	}
	b.log.Debug("gldraw: command finalized",
		"program", prog, "attributes", len(vao.Bindings), "uniforms", len(setters),
		"primitive", b.prim.String(), "count", cmd.count, "indexed", vao.Indexed())
	return cmd, nil
}

func (b *Builder) discard() {
	for _, id := range b.owned {
		b.dev.DeleteBuffer(id)
	}
	b.owned = nil
}

// MustFinalize is like Finalize but panics on error.
func (b *Builder) MustFinalize() *Command {
	cmd, err := b.Finalize()
	if err != nil {
		panic(err)
	}
	return cmd
}
