package engine

import (
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer"
	"github.com/Carmen-Shannon/oxy-triangle/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine polls input from and closes on shutdown.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer the engine draws with and releases on shutdown.
// Geometry and program must already be initialized.
//
// Parameters:
//   - r: a prepared Renderer instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithRotationApplied composes the rotation matrix into the uploaded transform.
// Off by default: the rotation is computed every frame but only the translation is uploaded.
//
// Parameters:
//   - applied: true to upload translation * rotation
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRotationApplied(applied bool) EngineBuilderOption {
	return func(e *engine) {
		e.rotationApplied = applied
	}
}
