// Package drawfile loads draw passes described in YAML or TOML files and
// builds them into gldraw commands.
//
// A pass names its shaders (inline or by path), its vertex streams, index
// data and uniforms:
//
//	name: spinning triangle
//	vert_file: triangle.vert
//	frag_file: triangle.frag
//	primitive: triangles
//	attributes:
//	  - name: position
//	    type: vec2
//	    data: [-0.5, -0.5, 0.5, -0.5, 0.0, 0.5]
//	uniforms:
//	  - name: rotation
//	    provider: rotation_z
//	    args: [1.5]
//	  - name: tint
//	    type: vec3
//	    value: [1.0, 0.4, 0.2]
//
// The same structure is accepted in TOML using [[attributes]] and
// [[uniforms]] tables.
package drawfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gldraw"
)

var (
	// ErrFormat is returned for an unknown file format or extension.
	ErrFormat = errors.New("drawfile: unknown format")

	// ErrInvalid is returned when a pass is structurally wrong: a missing
	// name, a source given both inline and by path, or malformed data.
	ErrInvalid = errors.New("drawfile: invalid pass")
)

// Format is a pass file encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// Pass is one decoded pass file.
type Pass struct {
	Name string `yaml:"name" toml:"name"`

	Vert     string `yaml:"vert" toml:"vert"`
	VertFile string `yaml:"vert_file" toml:"vert_file"`
	Frag     string `yaml:"frag" toml:"frag"`
	FragFile string `yaml:"frag_file" toml:"frag_file"`

	// Primitive is a gldraw primitive name. Empty keeps the context
	// default.
	Primitive string `yaml:"primitive" toml:"primitive"`

	// Count is the vertex count of a non-indexed draw. When zero it is
	// taken from the first attribute.
	Count int `yaml:"count" toml:"count"`

	// Elements is a flat index list or a list of index pairs or triples.
	Elements any `yaml:"elements" toml:"elements"`

	Attributes []Attribute `yaml:"attributes" toml:"attributes"`
	Uniforms   []Uniform   `yaml:"uniforms" toml:"uniforms"`

	// path is the file the pass was loaded from; shader paths resolve
	// against its directory.
	path string
}

// Attribute is one named vertex stream.
type Attribute struct {
	Name string `yaml:"name" toml:"name"`

	// Type is the GLSL type of one vertex, e.g. "vec3" or "ivec2".
	// When empty, Size float components per vertex are assumed.
	Type string `yaml:"type" toml:"type"`
	Size int    `yaml:"size" toml:"size"`

	Data []float64 `yaml:"data" toml:"data"`
}

// Uniform is either a constant or a named provider.
type Uniform struct {
	Name string `yaml:"name" toml:"name"`

	// Provider names a built-in provider; see Providers.
	Provider string    `yaml:"provider" toml:"provider"`
	Args     []float64 `yaml:"args" toml:"args"`

	// Type and Value describe a constant. Type may carry an array
	// length, e.g. "float[3]"; Value is a number or a flat list.
	Type  string `yaml:"type" toml:"type"`
	Value any    `yaml:"value" toml:"value"`
}

// Parse decodes a pass. Shader paths in the result resolve against the
// working directory.
func Parse(data []byte, format Format) (*Pass, error) {
	var p Pass
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&p)
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&p)
	default:
		return nil, fmt.Errorf("%w: %v", ErrFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("drawfile: decode %s: %w", format, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses a pass file, choosing the format by extension.
func Load(path string) (*Pass, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("drawfile: %w", err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.path = path
	return p, nil
}

// Path returns the file the pass was loaded from, or "" for a parsed pass.
func (p *Pass) Path() string { return p.path }

// Files returns the pass file and the shader files it references, for
// watching.
func (p *Pass) Files() []string {
	var files []string
	if p.path != "" {
		files = append(files, p.path)
	}
	for _, f := range []string{p.VertFile, p.FragFile} {
		if f != "" {
			files = append(files, p.resolve(f))
		}
	}
	return files
}

func (p *Pass) resolve(file string) string {
	if filepath.IsAbs(file) || p.path == "" {
		return file
	}
	return filepath.Join(filepath.Dir(p.path), file)
}

func (p *Pass) validate() error {
	if p.Vert != "" && p.VertFile != "" {
		return fmt.Errorf("%w: both vert and vert_file are set", ErrInvalid)
	}
	if p.Frag != "" && p.FragFile != "" {
		return fmt.Errorf("%w: both frag and frag_file are set", ErrInvalid)
	}
	if p.Count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalid, p.Count)
	}
	if p.Primitive != "" {
		if _, err := gldraw.ParsePrimitive(p.Primitive); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	for i, a := range p.Attributes {
		if a.Name == "" {
			return fmt.Errorf("%w: attribute %d has no name", ErrInvalid, i)
		}
	}
	for i, u := range p.Uniforms {
		switch {
		case u.Name == "":
			return fmt.Errorf("%w: uniform %d has no name", ErrInvalid, i)
		case u.Provider != "" && u.Value != nil:
			return fmt.Errorf("%w: uniform %q has both provider and value", ErrInvalid, u.Name)
		case u.Provider == "" && u.Value == nil:
			return fmt.Errorf("%w: uniform %q has neither provider nor value", ErrInvalid, u.Name)
		}
	}
	return nil
}

// source returns the inline source or the contents of file. ok is false
// when neither is set.
func (p *Pass) source(inline, file string) (src string, ok bool, err error) {
	if inline != "" {
		return inline, true, nil
	}
	if file == "" {
		return "", false, nil
	}
	data, err := os.ReadFile(p.resolve(file))
	if err != nil {
		return "", false, fmt.Errorf("drawfile: %w", err)
	}
	return string(data), true, nil
}
