package drawfile

import (
	"fmt"

	"github.com/gogpu/gldraw"
)

// Build feeds the pass to a builder from ctx and finalizes it. A pass
// without both shaders builds a no-op command, like the builder itself.
//
// Every value is converted before the first upload, so a malformed pass
// leaves nothing behind on the device.
func (p *Pass) Build(ctx *gldraw.Context) (*gldraw.Command, error) {
	vert, hasVert, err := p.source(p.Vert, p.VertFile)
	if err != nil {
		return nil, err
	}
	frag, hasFrag, err := p.source(p.Frag, p.FragFile)
	if err != nil {
		return nil, err
	}

	var prim gldraw.Primitive
	if p.Primitive != "" {
		if prim, err = gldraw.ParsePrimitive(p.Primitive); err != nil {
			return nil, err
		}
	}

	count := p.Count
	attrs := make([]gldraw.VertexData, len(p.Attributes))
	for i, a := range p.Attributes {
		if attrs[i], err = vertexData(a); err != nil {
			return nil, err
		}
		if i == 0 && count == 0 {
			count = attrs[i].Shape().Count
		}
	}

	var elems gldraw.Elements
	if p.Elements != nil {
		if elems, err = elements(p.Elements); err != nil {
			return nil, err
		}
	}

	providers := make([]gldraw.Provider, len(p.Uniforms))
	for i, u := range p.Uniforms {
		if providers[i], err = u.provider(); err != nil {
			return nil, err
		}
	}

	b := ctx.Draw()
	if hasVert {
		b.Vert(vert)
	}
	if hasFrag {
		b.Frag(frag)
	}
	if p.Primitive != "" {
		b.Primitive(prim)
	}
	for i, a := range p.Attributes {
		b.Attribute(a.Name, attrs[i])
	}
	b.Count(count)
	if elems != nil {
		b.Elements(elems)
	}
	for i, u := range p.Uniforms {
		b.Uniform(u.Name, providers[i])
	}

	cmd, err := b.Finalize()
	if err != nil {
		if p.Name != "" {
			return nil, fmt.Errorf("pass %q: %w", p.Name, err)
		}
		return nil, err
	}
	return cmd, nil
}

func (u Uniform) provider() (gldraw.Provider, error) {
	if u.Provider != "" {
		newProvider, ok := Providers[u.Provider]
		if !ok {
			return nil, fmt.Errorf("%w: uniform %q: unknown provider %q", ErrInvalid, u.Name, u.Provider)
		}
		p, err := newProvider(u.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: uniform %q: %v", ErrInvalid, u.Name, err)
		}
		return p, nil
	}
	v, err := constant(u.Type, u.Value)
	if err != nil {
		return nil, fmt.Errorf("uniform %q: %w", u.Name, err)
	}
	return gldraw.Const(v), nil
}
