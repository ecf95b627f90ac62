package gldraw

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gldraw/glcore"
)

// AttributeBinding records which buffer feeds one attribute and how.
type AttributeBinding struct {
	Name   string
	Buffer glcore.BufferID

	// Integer reports whether the slots were set with VertexAttribIPointer.
	Integer bool

	// Layout describes the stream. Matrix attributes have one entry in
	// Layout.Attributes per column, at consecutive shader locations.
	Layout gputypes.VertexBufferLayout
}

// VertexArray is a vertex array object with the bindings recorded in it.
type VertexArray struct {
	ID       glcore.VertexArrayID
	Bindings []AttributeBinding

	// Elements is the index buffer owned by the array, if any.
	Elements ElementBuffer
}

// Binding returns the binding of the named attribute.
func (v VertexArray) Binding(name string) (AttributeBinding, bool) {
	for _, b := range v.Bindings {
		if b.Name == name {
			return b, true
		}
	}
	return AttributeBinding{}, false
}

// Indexed reports whether the array owns an element buffer.
func (v VertexArray) Indexed() bool { return v.Elements.ID != glcore.InvalidID }

// BindAttributes creates a vertex array and points every reflected
// attribute that has a buffer of the same name at it. Attributes without a
// buffer stay disabled and buffers without an attribute are ignored. When
// elems is non-nil its buffer is attached as the array's element buffer.
func BindAttributes(dev glcore.Device, attrs []AttributeInfo, buffers map[string]Buffer, elems *ElementBuffer) (VertexArray, error) {
	return bindAttributes(dev, Logger(), attrs, buffers, elems)
}

func bindAttributes(dev glcore.Device, log *slog.Logger, attrs []AttributeInfo, buffers map[string]Buffer, elems *ElementBuffer) (VertexArray, error) {
	layouts := make([]AttributeBinding, 0, len(attrs))
	for _, a := range attrs {
		buf, ok := buffers[a.Name]
		if !ok {
			log.Debug("gldraw: attribute has no buffer", "name", a.Name)
			continue
		}
		b, err := attributeLayout(a, buf)
		if err != nil {
			return VertexArray{}, err
		}
		layouts = append(layouts, b)
	}
	for name := range buffers {
		if !hasAttribute(attrs, name) {
			log.Debug("gldraw: buffer has no active attribute", "name", name)
		}
	}

	vao := VertexArray{ID: dev.CreateVertexArray(), Bindings: layouts}
	dev.BindVertexArray(vao.ID)
	for _, b := range layouts {
		dev.BindBuffer(glcore.ArrayBuffer, b.Buffer)
		stride := int32(b.Layout.ArrayStride)
		for _, attr := range b.Layout.Attributes {
			size, typ, _ := glcore.FormatLayout(attr.Format)
			index := attr.ShaderLocation
			dev.EnableVertexAttribArray(index)
			if b.Integer {
				dev.VertexAttribIPointer(index, size, typ, stride, int(attr.Offset))
			} else {
				dev.VertexAttribPointer(index, size, typ, false, stride, int(attr.Offset))
			}
		}
	}
	if elems != nil && elems.ID != glcore.InvalidID {
		dev.BindBuffer(glcore.ElementArrayBuffer, elems.ID)
		vao.Elements = *elems
	}
	dev.BindVertexArray(glcore.InvalidID)
	dev.BindBuffer(glcore.ArrayBuffer, glcore.InvalidID)

	log.Debug("gldraw: vertex array built", "vao", vao.ID, "bindings", len(layouts), "indexed", vao.Indexed())
	return vao, nil
}

// attributeLayout checks that buf can feed a and describes the stream.
func attributeLayout(a AttributeInfo, buf Buffer) (AttributeBinding, error) {
	mismatch := func() error {
		return fmt.Errorf("%w: %q is %s, buffer has %d %s components per vertex",
			ErrAttributeMismatch, a.Name, glcore.TypeName(a.Type), buf.Components, buf.Scalar)
	}

	b := AttributeBinding{Name: a.Name, Buffer: buf.ID}
	switch a.Scalar {
	case glcore.ScalarFloat:
	case glcore.ScalarInt, glcore.ScalarUint:
		if buf.Scalar == glcore.ScalarFloat {
			return b, mismatch()
		}
		b.Integer = true
	default:
		return b, mismatch()
	}

	columns, rows := 1, buf.Components
	if a.Columns > 1 {
		if buf.Components != a.Arity() || buf.Scalar != glcore.ScalarFloat {
			return b, mismatch()
		}
		// mat3x4 and mat4x3 have the same width but not the same layout.
		if buf.Columns != 0 && buf.Columns != a.Columns {
			return b, fmt.Errorf("%w: %q is %s, buffer has %d columns of %d",
				ErrAttributeMismatch, a.Name, glcore.TypeName(a.Type), buf.Columns, buf.Components/buf.Columns)
		}
		columns, rows = a.Columns, a.Rows
	} else if buf.Components < 1 || buf.Components > 4 || buf.Columns > 1 {
		return b, mismatch()
	}

	format, ok := glcore.VertexFormat(buf.Scalar, rows)
	if !ok {
		return b, mismatch()
	}
	b.Layout = gputypes.VertexBufferLayout{
		ArrayStride: uint64(buf.Stride()),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  make([]gputypes.VertexAttribute, columns),
	}
	for i := range columns {
		b.Layout.Attributes[i] = gputypes.VertexAttribute{
			Format:         format,
			Offset:         uint64(i * rows * 4),
			ShaderLocation: uint32(a.Location) + uint32(i),
		}
	}
	return b, nil
}

func hasAttribute(attrs []AttributeInfo, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}
