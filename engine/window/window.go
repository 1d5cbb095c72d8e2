package window

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ContextType selects which client API the window creates alongside the platform window.
type ContextType int

const (
	// ContextOpenGL creates an OpenGL 4.1 core profile context and makes it current on the calling thread.
	ContextOpenGL ContextType = iota

	// ContextNone creates the window without a client API so a WebGPU surface can be attached to it.
	ContextNone
)

// Window provides platform windowing and polled keyboard input.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// KeyPressed reports whether the key is currently held down.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common.Key*)
	//
	// Returns:
	//   - bool: true if the key is pressed
	KeyPressed(keyCode uint32) bool

	// RequestClose flags the window for closing. ShouldClose reports true afterwards.
	RequestClose()

	// ShouldClose reports whether a close was requested, either through RequestClose or
	// by the windowing system (e.g. the title bar close button).
	//
	// Returns:
	//   - bool: true if the window should close
	ShouldClose() bool

	// Time returns the number of seconds elapsed since the windowing subsystem was initialized.
	//
	// Returns:
	//   - float64: elapsed time in seconds
	Time() float64

	// SwapBuffers presents the back buffer of the OpenGL context. No-op for ContextNone windows.
	SwapBuffers()

	// PollEvents processes pending window and input events without blocking.
	PollEvents()

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Close destroys the window and shuts down the windowing subsystem.
	// Calling Close more than once is a no-op.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// Width returns the window client area width in pixels.
	Width() int

	// Height returns the window client area height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds the fixed window configuration and the GLFW state.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the window client area width in pixels.
	width int

	// height is the window client area height in pixels.
	height int

	// contextType selects the client API created with the window.
	contextType ContextType

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	closed bool
}

var _ Window = &engineWindow{}

// NewWindow creates and spawns a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
//   - error: error if the windowing subsystem, the window or its context could not be initialized
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:       DefaultTitle,
		width:       DefaultWidth,
		height:      DefaultHeight,
		contextType: ContextOpenGL,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) KeyPressed(keyCode uint32) bool {
	return platformKeyPressed(w, keyCode)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) ShouldClose() bool {
	return platformShouldClose(w)
}

func (w *engineWindow) Time() float64 {
	return platformTime()
}

func (w *engineWindow) SwapBuffers() {
	if w.contextType != ContextOpenGL {
		return
	}
	platformSwapBuffers(w)
}

func (w *engineWindow) PollEvents() {
	platformPollEvents()
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) Close() error {
	if w.closed {
		return nil
	}
	if err := platformCloseWindow(w); err != nil {
		return err
	}
	w.closed = true
	return nil
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
