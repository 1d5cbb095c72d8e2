package shader

// ShaderType identifies the pipeline stage a shader runs in.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, run once per vertex.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, run once per covered pixel in pair with a vertex shader.
	ShaderTypeFragment
)

func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string
}

// Shader is a named shader source for a single pipeline stage.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used in labels and diagnostics.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the shader source code (GLSL or WGSL depending on the backend it targets).
	//
	// Returns:
	//   - string: the source code of the shader
	Source() string

	// EntryPoint returns the entry point name for this shader.
	//
	// Returns:
	//   - string: the entry point name (e.g. "main")
	EntryPoint() string

	// ShaderType returns the stage this shader runs in.
	//
	// Returns:
	//   - ShaderType: the shader stage
	ShaderType() ShaderType
}

var _ Shader = &shader{}

// NewShader creates a Shader from an in-memory source string.
// The entry point defaults to "main" and can be overridden with WithEntryPoint.
//
// Parameters:
//   - key: the unique identifier for the shader
//   - shaderType: the stage the shader runs in
//   - source: the shader source code
//   - options: functional options applied after the defaults
//
// Returns:
//   - Shader: the new shader
func NewShader(key string, shaderType ShaderType, source string, options ...ShaderBuilderOption) Shader {
	s := &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
		entryPoint: "main",
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// ShaderBuilderOption is a functional option for configuring a shader.
type ShaderBuilderOption func(*shader)

// WithEntryPoint sets the entry point function name of the shader.
//
// Parameters:
//   - entryPoint: the entry point name
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}
