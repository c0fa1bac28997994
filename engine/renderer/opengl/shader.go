package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/prism/engine/core"
)

// ShaderPipeline owns one linked program. The two stage objects only live
// for the duration of newShaderPipeline: compile, attach, link, delete.
type ShaderPipeline struct {
	program *handle
}

func newShaderPipeline(vertexSource, fragmentSource string) (*ShaderPipeline, error) {
	vertexShader, err := compileStage(vertexSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}

	fragmentShader, err := compileStage(fragmentSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// The stage handles are transient either way.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, &core.ShaderLinkError{Log: infoLog}
	}

	return &ShaderPipeline{
		program: newHandle(program, gl.DeleteProgram),
	}, nil
}

func compileStage(source string, kind uint32, stageName string) (uint32, error) {
	shader := gl.CreateShader(kind)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &core.ShaderCompileError{Stage: stageName, Log: infoLog}
	}
	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

// Use activates the program for subsequent draw submissions.
func (s *ShaderPipeline) Use() {
	gl.UseProgram(s.program.id)
}

// location resolves a uniform by name, -1 when the active variant does not
// have it. Caching the lookup after linking is a known extension point; with
// a single draw per frame the per-frame lookup is fine.
func (s *ShaderPipeline) location(name string) int32 {
	return gl.GetUniformLocation(s.program.id, gl.Str(name+"\x00"))
}

func (s *ShaderPipeline) SetUniformMat4(name string, value mgl32.Mat4) {
	if loc := s.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (s *ShaderPipeline) SetUniformVec3(name string, value mgl32.Vec3) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	}
}

func (s *ShaderPipeline) SetUniformInt(name string, value int32) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (s *ShaderPipeline) Release() {
	s.program.Release()
}
