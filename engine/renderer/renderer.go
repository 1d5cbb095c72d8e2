package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-triangle/engine/model"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-triangle/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	released bool

	// Pre-creation config collected from builder options
	clearColor           [4]float64
	presentMode          PresentMode
	forceFallbackAdapter bool
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns the GPU resources for a single model and a single program and draws them once per
// frame. The Renderer implements a backend which allows for multiple backend API implementations to exist.
type Renderer interface {
	// BackendType reports which backend this renderer was created with.
	//
	// Returns:
	//   - RendererBackendType: the backend type
	BackendType() RendererBackendType

	// InitGeometry uploads the model's vertices once. The data is immutable afterwards.
	//
	// Parameters:
	//   - m: the model to upload
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitGeometry(m model.Model) error

	// InitProgram builds the program from the vertex and fragment shaders.
	// Failures are logged and returned but rendering continues with the invalid program.
	//
	// Parameters:
	//   - vertex: the vertex stage
	//   - fragment: the fragment stage
	//
	// Returns:
	//   - error: the build error, if any
	InitProgram(vertex, fragment shader.Shader) error

	// SetTransform uploads a row-major 4x4 matrix to the transform uniform.
	//
	// Parameters:
	//   - m: 16 row-major float32 values
	SetTransform(m []float32)

	// BeginFrame starts a frame and clears the color buffer.
	// Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the frame could not be started
	BeginFrame() error

	// Draw draws the uploaded geometry with the current program and transform.
	Draw()

	// EndFrame ends the current frame and submits it to the GPU.
	// Does not present the frame; call Present() after EndFrame to display it.
	EndFrame()

	// Present presents the finished frame to the display.
	Present()

	// Release frees every GPU resource owned by the renderer. Subsequent calls are no-ops,
	// as are frame calls made after release.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type bound to the window.
//
// Parameters:
//   - backendType: the type of rendering backend to use
//   - win: the window to render into; BackendTypeGL needs a window created with window.ContextOpenGL
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
//   - error: an error if the backend could not be initialized
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(backendType, options...)

	switch backendType {
	case BackendTypeGL:
		r.backend = newGLRendererBackend(win, r.clearColor)
	case BackendTypeWGPU:
		b, err := newWGPURendererBackend(win, r.forceFallbackAdapter, r.presentMode, r.clearColor)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize WebGPU backend: %w", err)
		}
		r.backend = b
	default:
		return nil, fmt.Errorf("unsupported renderer backend type %d", backendType)
	}

	return r, nil
}

// newRenderer applies the defaults and options without creating a backend.
func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  [4]float64{0, 0, 0, 1},
		presentMode: PresentModeVSync,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) InitGeometry(m model.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return fmt.Errorf("renderer has been released")
	}
	if m.VertexCount() == 0 {
		return fmt.Errorf("model %q has no vertices", m.Name())
	}
	return r.backend.InitGeometry(m)
}

func (r *renderer) InitProgram(vertex, fragment shader.Shader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return fmt.Errorf("renderer has been released")
	}
	if err := r.backend.InitProgram(vertex, fragment); err != nil {
		log.Printf("[Renderer] continuing with an invalid program: %v", err)
		return err
	}
	return nil
}

func (r *renderer) SetTransform(m []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released || len(m) < 16 {
		return
	}
	r.backend.SetTransform(m)
}

func (r *renderer) BeginFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return fmt.Errorf("renderer has been released")
	}
	return r.backend.BeginFrame()
}

func (r *renderer) Draw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.backend.Draw()
}

func (r *renderer) EndFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.backend.Present()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.released = true
	r.backend.Release()
}
