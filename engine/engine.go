package engine

import (
	"log"

	"github.com/Carmen-Shannon/oxy-triangle/common"
	"github.com/Carmen-Shannon/oxy-triangle/engine/animation"
	"github.com/Carmen-Shannon/oxy-triangle/engine/profiler"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer"
	"github.com/Carmen-Shannon/oxy-triangle/engine/window"
)

// EngineState is the lifecycle state of the render loop.
type EngineState int

const (
	// StateRunning means frames are being produced.
	StateRunning EngineState = iota
	// StateClosingRequested means Escape or a window-close signal was seen; the next frame tears down.
	StateClosingRequested
	// StateTerminated means the renderer was released and the window closed.
	StateTerminated
)

func (s EngineState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateClosingRequested:
		return "ClosingRequested"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// engine implements the Engine interface.
// Drives input, animation and rendering on the calling thread.
type engine struct {
	window   window.Window
	renderer renderer.Renderer

	state EngineState

	anim      animation.State
	lastFrame float64
	deltaTime float32

	rotationApplied bool

	translation [16]float32
	rotation    [16]float32
	transform   [16]float32

	profiler         *profiler.Profiler
	profilingEnabled bool
}

// Engine is the main entry point for the engine.
// It owns the single-threaded render loop: input, animation, transform upload and drawing.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer frames are drawn with.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// State reports where the engine is in its lifecycle.
	//
	// Returns:
	//   - EngineState: the current loop state
	State() EngineState

	// Animation returns a snapshot of the triangle's animation state.
	//
	// Returns:
	//   - animation.State: the current animation state
	Animation() animation.State

	// DeltaTime returns the seconds elapsed between the last two frames.
	//
	// Returns:
	//   - float32: the last frame's delta time
	DeltaTime() float32

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Frame runs exactly one iteration of the render loop.
	// In StateClosingRequested it tears down instead and moves to StateTerminated.
	// In StateTerminated it does nothing.
	Frame()

	// Run calls Frame until the engine reaches StateTerminated (blocks until the window closes).
	// Must be called from the thread that created the window.
	Run()

	// Quit requests the window to close. The loop terminates on the next frame.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A window and a renderer must be supplied through WithWindow and WithRenderer.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		state:            StateRunning,
		anim:             animation.NewState(),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	common.Identity(e.translation[:])
	common.Identity(e.rotation[:])
	common.Identity(e.transform[:])

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) State() EngineState {
	return e.state
}

func (e *engine) Animation() animation.State {
	return e.anim
}

func (e *engine) DeltaTime() float32 {
	return e.deltaTime
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Run() {
	for e.state != StateTerminated {
		e.Frame()
	}
}

func (e *engine) Quit() {
	if e.state != StateRunning {
		return
	}
	e.window.RequestClose()
	e.state = StateClosingRequested
}

func (e *engine) Frame() {
	if e.state == StateRunning && e.window.ShouldClose() {
		e.state = StateClosingRequested
	}

	switch e.state {
	case StateTerminated:
		return
	case StateClosingRequested:
		e.terminate()
		return
	}

	now := e.window.Time()
	e.deltaTime = float32(now - e.lastFrame)
	e.lastFrame = now

	if e.window.KeyPressed(common.KeyEsc) {
		e.window.RequestClose()
	}

	animation.Update(&e.anim, animation.Input{
		Left:  e.window.KeyPressed(common.KeyLeft),
		Right: e.window.KeyPressed(common.KeyRight),
		Jump:  e.window.KeyPressed(common.KeySpace),
	}, now)

	common.Translation(e.translation[:], e.anim.OffsetX, e.anim.Y())
	common.Rotation(e.rotation[:], e.anim.RotationAngle)
	if e.rotationApplied {
		common.Mul4(e.transform[:], e.translation[:], e.rotation[:])
	} else {
		e.transform = e.translation
	}

	if e.renderer != nil {
		e.renderer.SetTransform(e.transform[:])
		if err := e.renderer.BeginFrame(); err == nil {
			e.renderer.Draw()
			e.renderer.EndFrame()
			e.renderer.Present()
		}
	}

	e.window.PollEvents()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(e.deltaTime)
	}

	if e.window.ShouldClose() {
		e.state = StateClosingRequested
	}
}

// terminate releases the renderer before the window so GPU objects are freed while the context is alive.
func (e *engine) terminate() {
	if e.renderer != nil {
		e.renderer.Release()
	}
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] failed to close window: %v", err)
	}
	e.state = StateTerminated
}
