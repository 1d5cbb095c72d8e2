package shader

// TransformUniform is the name of the mat4 uniform consumed by the vertex stage.
// The matrix is uploaded in row-major order.
const TransformUniform = "transform"

// GLSLVertexSource positions each vertex by the transform uniform.
const GLSLVertexSource = `#version 330 core
layout(location = 0) in vec3 aPos;
uniform mat4 transform;
void main()
{
    gl_Position = transform * vec4(aPos, 1.0);
}
`

// GLSLFragmentSource paints every fragment with the constant triangle color.
const GLSLFragmentSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(0.4, 0.8, 0.6, 1.0);
}
`

// WGSLVertexSource is the WebGPU counterpart of GLSLVertexSource.
// WGSL reads the row-major upload as the transpose, so the position is multiplied from the left.
const WGSLVertexSource = `struct Transform {
    matrix: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> transform: Transform;

@vertex
fn vs_main(@location(0) aPos: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(aPos, 1.0) * transform.matrix;
}
`

// WGSLFragmentSource is the WebGPU counterpart of GLSLFragmentSource.
const WGSLFragmentSource = `@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.4, 0.8, 0.6, 1.0);
}
`

// TriangleGLSL returns the vertex and fragment shaders used by the OpenGL backend.
//
// Returns:
//   - Shader: the vertex shader
//   - Shader: the fragment shader
func TriangleGLSL() (Shader, Shader) {
	return NewShader("triangle_vert", ShaderTypeVertex, GLSLVertexSource),
		NewShader("triangle_frag", ShaderTypeFragment, GLSLFragmentSource)
}

// TriangleWGSL returns the vertex and fragment shaders used by the WebGPU backend.
//
// Returns:
//   - Shader: the vertex shader
//   - Shader: the fragment shader
func TriangleWGSL() (Shader, Shader) {
	return NewShader("triangle_vert", ShaderTypeVertex, WGSLVertexSource,
			WithEntryPoint(ParseWGSLEntryPoint(WGSLVertexSource, ShaderTypeVertex))),
		NewShader("triangle_frag", ShaderTypeFragment, WGSLFragmentSource,
			WithEntryPoint(ParseWGSLEntryPoint(WGSLFragmentSource, ShaderTypeFragment)))
}
