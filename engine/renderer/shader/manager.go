package shader

import (
	"errors"
	"fmt"
	"log"
)

// Compiler exposes the graphics API entry points the Manager needs to build a program.
// Handles are opaque to the Manager; a zero handle is never treated specially.
type Compiler interface {
	// CreateShader allocates a new shader object for the given stage.
	CreateShader(shaderType ShaderType) uint32

	// CompileSource uploads the source to the shader object and compiles it.
	CompileSource(handle uint32, source string)

	// CompileStatus reports whether the last compile succeeded, with the driver's info log when it did not.
	CompileStatus(handle uint32) (bool, string)

	// CreateProgram allocates a new program object.
	CreateProgram() uint32

	// AttachShader attaches a compiled shader object to a program.
	AttachShader(program, handle uint32)

	// LinkProgram links all attached shaders into the program.
	LinkProgram(program uint32)

	// LinkStatus reports whether the last link succeeded, with the driver's info log when it did not.
	LinkStatus(program uint32) (bool, string)

	// DeleteShader flags a shader object for deletion. Attached shaders are freed when their program is.
	DeleteShader(handle uint32)
}

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Key        string
	ShaderType ShaderType
	Log        string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader %q failed to compile:\n%s", e.ShaderType, e.Key, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program failed to link:\n%s", e.Log)
}

// noDiagnostic stands in for an empty driver info log so a failure never reports an empty message.
const noDiagnostic = "no diagnostic log available"

// Manager compiles shader stages and links them into programs.
//
// Failures are reported to the logger and returned, but never abort: the (invalid) handle is always
// handed back so the caller can keep running and render nothing instead of crashing.
type Manager struct {
	compiler Compiler
	logger   *log.Logger
}

// ManagerBuilderOption is a functional option for configuring a Manager.
type ManagerBuilderOption func(*Manager)

// WithLogger sets the logger shader diagnostics are written to. Defaults to the standard logger (stderr).
//
// Parameters:
//   - logger: the destination logger
//
// Returns:
//   - ManagerBuilderOption: option function to apply
func WithLogger(logger *log.Logger) ManagerBuilderOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager that issues its calls through compiler.
//
// Parameters:
//   - compiler: the graphics API entry points
//   - options: functional options applied after the defaults
//
// Returns:
//   - *Manager: the new manager
func NewManager(compiler Compiler, options ...ManagerBuilderOption) *Manager {
	m := &Manager{
		compiler: compiler,
		logger:   log.Default(),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// CompileShader creates a shader object of the given stage and compiles source into it.
// On failure the diagnostic log is written to the logger and a *CompileError is returned together
// with the handle.
//
// Parameters:
//   - shaderType: the stage to compile for
//   - source: the shader source code
//
// Returns:
//   - uint32: the shader handle, returned even when compilation fails
//   - error: a *CompileError if compilation failed
func (m *Manager) CompileShader(shaderType ShaderType, source string) (uint32, error) {
	return m.compile(NewShader(shaderType.String(), shaderType, source))
}

// CreateShaderProgram compiles the vertex and fragment shaders, links them into a program and
// deletes both shader objects afterwards, whether or not linking succeeded.
//
// Parameters:
//   - vertex: the vertex stage
//   - fragment: the fragment stage
//
// Returns:
//   - uint32: the program handle, returned even when a stage or the link failed
//   - error: the joined compile and link errors, or nil
func (m *Manager) CreateShaderProgram(vertex, fragment Shader) (uint32, error) {
	var errs []error

	vs, err := m.compile(vertex)
	if err != nil {
		errs = append(errs, err)
	}
	fs, err := m.compile(fragment)
	if err != nil {
		errs = append(errs, err)
	}

	program := m.compiler.CreateProgram()
	m.compiler.AttachShader(program, vs)
	m.compiler.AttachShader(program, fs)
	m.compiler.LinkProgram(program)

	if ok, infoLog := m.compiler.LinkStatus(program); !ok {
		linkErr := &LinkError{Log: diagnostic(infoLog)}
		m.logger.Printf("[Shader] %v", linkErr)
		errs = append(errs, linkErr)
	}

	m.compiler.DeleteShader(vs)
	m.compiler.DeleteShader(fs)

	return program, errors.Join(errs...)
}

func (m *Manager) compile(s Shader) (uint32, error) {
	handle := m.compiler.CreateShader(s.ShaderType())
	m.compiler.CompileSource(handle, s.Source())

	if ok, infoLog := m.compiler.CompileStatus(handle); !ok {
		compileErr := &CompileError{
			Key:        s.Key(),
			ShaderType: s.ShaderType(),
			Log:        diagnostic(infoLog),
		}
		m.logger.Printf("[Shader] %v", compileErr)
		return handle, compileErr
	}
	return handle, nil
}

func diagnostic(infoLog string) string {
	if infoLog == "" {
		return noDiagnostic
	}
	return infoLog
}
