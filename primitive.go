package gldraw

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gldraw/glcore"
)

// Primitive is how vertices or indices are grouped into shapes.
// The zero value is Triangles, the builder default.
type Primitive uint8

// Primitive kinds.
const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Points
	Lines
	LineStrip
	LineLoop
)

var primitiveNames = [...]string{
	Triangles:     "triangles",
	TriangleStrip: "triangle-strip",
	TriangleFan:   "triangle-fan",
	Points:        "points",
	Lines:         "lines",
	LineStrip:     "line-strip",
	LineLoop:      "line-loop",
}

// String returns the lower-case name used in pass files.
func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("Primitive(%d)", uint8(p))
}

// Mode returns the GL draw mode.
func (p Primitive) Mode() glcore.Enum {
	switch p {
	case TriangleStrip:
		return glcore.TriangleStrip
	case TriangleFan:
		return glcore.TriangleFan
	case Points:
		return glcore.Points
	case Lines:
		return glcore.Lines
	case LineStrip:
		return glcore.LineStrip
	case LineLoop:
		return glcore.LineLoop
	default:
		return glcore.Triangles
	}
}

// IsLine reports whether p is a line topology.
func (p Primitive) IsLine() bool {
	return p == Lines || p == LineStrip || p == LineLoop
}

// IsTriangle reports whether p is a triangle topology.
func (p Primitive) IsTriangle() bool {
	return p == Triangles || p == TriangleStrip || p == TriangleFan
}

// Topology returns the equivalent WebGPU topology. Line loops and
// triangle fans have none.
func (p Primitive) Topology() (gputypes.PrimitiveTopology, bool) {
	switch p {
	case Points:
		return gputypes.PrimitiveTopologyPointList, true
	case Lines:
		return gputypes.PrimitiveTopologyLineList, true
	case LineStrip:
		return gputypes.PrimitiveTopologyLineStrip, true
	case Triangles:
		return gputypes.PrimitiveTopologyTriangleList, true
	case TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	}
	return gputypes.PrimitiveTopologyTriangleList, false
}

// ParsePrimitive parses a primitive name as returned by String. Underscores
// and spaces are accepted in place of dashes.
func ParsePrimitive(s string) (Primitive, error) {
	norm := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
	for p, name := range primitiveNames {
		if name == norm {
			return Primitive(p), nil
		}
	}
	return Triangles, fmt.Errorf("gldraw: unknown primitive %q", s)
}
