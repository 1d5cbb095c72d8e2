package renderer

import (
	"github.com/Carmen-Shannon/oxy-triangle/engine/model"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-triangle/engine/window"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// glRendererBackendImpl draws through the OpenGL context current on the calling thread.
type glRendererBackendImpl struct {
	window  window.Window
	manager *shader.Manager

	vao, vbo     uint32
	program      uint32
	transformLoc int32
	vertexCount  int32
}

var _ RendererBackend = &glRendererBackendImpl{}

func newGLRendererBackend(win window.Window, clearColor [4]float64) *glRendererBackendImpl {
	gl.ClearColor(float32(clearColor[0]), float32(clearColor[1]), float32(clearColor[2]), float32(clearColor[3]))
	return &glRendererBackendImpl{
		window:       win,
		manager:      shader.NewManager(shader.NewGLCompiler()),
		transformLoc: -1,
	}
}

func (b *glRendererBackendImpl) InitGeometry(m model.Model) error {
	vertices := m.VertexData()

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, model.ComponentsPerVertex, gl.FLOAT, false, model.ComponentsPerVertex*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	b.vertexCount = int32(m.VertexCount())
	return nil
}

func (b *glRendererBackendImpl) InitProgram(vertex, fragment shader.Shader) error {
	program, err := b.manager.CreateShaderProgram(vertex, fragment)
	b.program = program

	gl.UseProgram(b.program)
	b.transformLoc = gl.GetUniformLocation(b.program, gl.Str(shader.TransformUniform+"\x00"))

	return err
}

func (b *glRendererBackendImpl) SetTransform(m []float32) {
	gl.UseProgram(b.program)
	// transpose = true: the matrix is row-major, GLSL expects column-major.
	gl.UniformMatrix4fv(b.transformLoc, 1, true, &m[0])
}

func (b *glRendererBackendImpl) BeginFrame() error {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func (b *glRendererBackendImpl) Draw() {
	gl.UseProgram(b.program)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.vertexCount)
	gl.BindVertexArray(0)
}

func (b *glRendererBackendImpl) EndFrame() {}

func (b *glRendererBackendImpl) Present() {
	b.window.SwapBuffers()
}

func (b *glRendererBackendImpl) Release() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
}
