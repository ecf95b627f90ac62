package gldraw

import (
	"fmt"
	"strings"

	"github.com/gogpu/gldraw/glcore"
)

// Stage is a programmable pipeline stage.
type Stage uint8

// Shader stages.
const (
	StageVertex Stage = iota
	StageFragment
)

// Enum returns the GL shader type.
func (s Stage) Enum() glcore.Enum {
	if s == StageFragment {
		return glcore.FragmentShader
	}
	return glcore.VertexShader
}

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// CompileShader compiles src for stage. On failure the shader object is
// deleted and the error carries the driver's info log.
func CompileShader(dev glcore.Device, stage Stage, src string) (glcore.ShaderID, error) {
	id := dev.CreateShader(stage.Enum())
	dev.ShaderSource(id, src)
	dev.CompileShader(id)
	if !dev.ShaderCompileStatus(id) {
		log := strings.TrimSpace(dev.ShaderInfoLog(id))
		dev.DeleteShader(id)
		return glcore.InvalidID, fmt.Errorf("%w: %s shader: %s", ErrShaderCompile, stage, log)
	}
	return id, nil
}

// LinkProgram links a compiled vertex and fragment shader. Both shaders are
// detached and deleted whether or not linking succeeds; they cannot be
// reused.
func LinkProgram(dev glcore.Device, vert, frag glcore.ShaderID) (glcore.ProgramID, error) {
	prog := dev.CreateProgram()
	dev.AttachShader(prog, vert)
	dev.AttachShader(prog, frag)
	dev.LinkProgram(prog)
	dev.DetachShader(prog, vert)
	dev.DetachShader(prog, frag)
	dev.DeleteShader(vert)
	dev.DeleteShader(frag)

	if !dev.ProgramLinkStatus(prog) {
		log := strings.TrimSpace(dev.ProgramInfoLog(prog))
		dev.DeleteProgram(prog)
		return glcore.InvalidID, fmt.Errorf("%w: %s", ErrProgramLink, log)
	}
	Logger().Info("gldraw: program linked", "program", prog)
	return prog, nil
}
