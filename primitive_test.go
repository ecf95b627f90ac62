package gldraw

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gldraw/glcore"
)

func TestPrimitive(t *testing.T) {
	tests := []struct {
		p        Primitive
		name     string
		mode     glcore.Enum
		line     bool
		triangle bool
	}{
		{Triangles, "triangles", glcore.Triangles, false, true},
		{TriangleStrip, "triangle-strip", glcore.TriangleStrip, false, true},
		{TriangleFan, "triangle-fan", glcore.TriangleFan, false, true},
		{Points, "points", glcore.Points, false, false},
		{Lines, "lines", glcore.Lines, true, false},
		{LineStrip, "line-strip", glcore.LineStrip, true, false},
		{LineLoop, "line-loop", glcore.LineLoop, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.name {
				t.Errorf("String() = %q", got)
			}
			if got := tt.p.Mode(); got != tt.mode {
				t.Errorf("Mode() = %d, want %d", got, tt.mode)
			}
			if tt.p.IsLine() != tt.line || tt.p.IsTriangle() != tt.triangle {
				t.Errorf("IsLine() = %v, IsTriangle() = %v", tt.p.IsLine(), tt.p.IsTriangle())
			}
			parsed, err := ParsePrimitive(tt.name)
			if err != nil || parsed != tt.p {
				t.Errorf("ParsePrimitive(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
}

func TestPrimitiveZeroValueIsTriangles(t *testing.T) {
	var p Primitive
	if p != Triangles || p.Mode() != glcore.Triangles {
		t.Errorf("zero Primitive = %v", p)
	}
}

func TestParsePrimitiveSpellings(t *testing.T) {
	for _, s := range []string{"LINE_STRIP", " line strip ", "Line-Strip"} {
		if p, err := ParsePrimitive(s); err != nil || p != LineStrip {
			t.Errorf("ParsePrimitive(%q) = %v, %v", s, p, err)
		}
	}
	if _, err := ParsePrimitive("quads"); err == nil {
		t.Error("ParsePrimitive(quads) should fail")
	}
	if got := Primitive(42).String(); got != "Primitive(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPrimitiveTopology(t *testing.T) {
	tests := []struct {
		p    Primitive
		want gputypes.PrimitiveTopology
		ok   bool
	}{
		{Points, gputypes.PrimitiveTopologyPointList, true},
		{Lines, gputypes.PrimitiveTopologyLineList, true},
		{LineStrip, gputypes.PrimitiveTopologyLineStrip, true},
		{Triangles, gputypes.PrimitiveTopologyTriangleList, true},
		{TriangleStrip, gputypes.PrimitiveTopologyTriangleStrip, true},
		{LineLoop, gputypes.PrimitiveTopologyTriangleList, false},
		{TriangleFan, gputypes.PrimitiveTopologyTriangleList, false},
	}
	for _, tt := range tests {
		got, ok := tt.p.Topology()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%v.Topology() = %v, %v", tt.p, got, ok)
		}
	}
}
