package renderer

import (
	"github.com/Carmen-Shannon/oxy-triangle/engine/model"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer/shader"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeGL selects the OpenGL backend. The window must own a current OpenGL context.
	BackendTypeGL RendererBackendType = iota

	// BackendTypeWGPU selects the WebGPU-based rendering backend. The window must be created without a client API.
	BackendTypeWGPU
)

// PresentMode controls how rendered frames are presented to the display surface.
// Only the WGPU backend honors it; the GL backend presents through the window's swap interval.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend is the contract every GPU backend implements.
// All methods run on the thread that owns the graphics context.
type RendererBackend interface {
	// InitGeometry uploads the model's vertex positions to a GPU buffer and records the vertex layout.
	//
	// Parameters:
	//   - m: the model to upload
	//
	// Returns:
	//   - error: an error if the buffers could not be created
	InitGeometry(m model.Model) error

	// InitProgram builds the program or pipeline from the vertex and fragment shaders.
	// A failed build leaves the backend drawing with an invalid program instead of aborting.
	//
	// Parameters:
	//   - vertex: the vertex stage
	//   - fragment: the fragment stage
	//
	// Returns:
	//   - error: the compile, link or pipeline error, if any
	InitProgram(vertex, fragment shader.Shader) error

	// SetTransform uploads a row-major 4x4 matrix to the transform uniform.
	//
	// Parameters:
	//   - m: 16 row-major float32 values
	SetTransform(m []float32)

	// BeginFrame starts a frame and clears the color buffer.
	//
	// Returns:
	//   - error: an error if the frame could not be started
	BeginFrame() error

	// Draw issues one draw call for the uploaded geometry as a triangle list.
	Draw()

	// EndFrame finishes recording the frame and submits it.
	EndFrame()

	// Present shows the finished frame.
	Present()

	// Release frees the vertex array, buffers and program owned by the backend.
	Release()
}
