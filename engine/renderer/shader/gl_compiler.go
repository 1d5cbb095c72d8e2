package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glCompiler issues shader calls against the OpenGL context current on the calling thread.
type glCompiler struct{}

var _ Compiler = glCompiler{}

// NewGLCompiler returns a Compiler backed by go-gl. gl.Init must have run on a current context.
//
// Returns:
//   - Compiler: the OpenGL compiler
func NewGLCompiler() Compiler {
	return glCompiler{}
}

func (glCompiler) CreateShader(shaderType ShaderType) uint32 {
	switch shaderType {
	case ShaderTypeFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (glCompiler) CompileSource(handle uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(handle, 1, csource, nil)
	free()
	gl.CompileShader(handle)
}

func (glCompiler) CompileStatus(handle uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	return false, readInfoLog(logLength, func(buf *uint8) {
		gl.GetShaderInfoLog(handle, logLength, nil, buf)
	})
}

func (glCompiler) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (glCompiler) AttachShader(program, handle uint32) {
	gl.AttachShader(program, handle)
}

func (glCompiler) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (glCompiler) LinkStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	return false, readInfoLog(logLength, func(buf *uint8) {
		gl.GetProgramInfoLog(program, logLength, nil, buf)
	})
}

func (glCompiler) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

// readInfoLog allocates a buffer sized to the driver-reported log length and fills it through read.
func readInfoLog(logLength int32, read func(buf *uint8)) string {
	if logLength <= 0 {
		return ""
	}
	buf := make([]byte, logLength+1)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
