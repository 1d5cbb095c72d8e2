package window

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	window *glfw.Window
}

// newPlatformWindow initializes GLFW, creates the window with the requested client API and, for
// OpenGL windows, makes the context current and loads the GL entry points.
// The caller must have locked the OS thread; GLFW and the GL context are bound to it.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	switch w.contextType {
	case ContextNone:
		// WebGPU provides its own graphics API, so disable OpenGL context creation.
		// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	default:
		// 4.1 core is the highest profile macOS offers and accepts #version 330 shaders.
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}

	if w.contextType == ContextOpenGL {
		win.MakeContextCurrent()
		if err := gl.Init(); err != nil {
			win.Destroy()
			glfw.Terminate()
			return fmt.Errorf("failed to initialize OpenGL: %w", err)
		}
	}

	w.internalWindow = &glfwWindow{
		window: win,
	}
	return nil
}

// platformKeyPressed polls the last reported state of a key.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.GetKey
func platformKeyPressed(w *engineWindow, keyCode uint32) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.window.GetKey(glfw.Key(keyCode)) == glfw.Press
}

// platformRequestClose sets the GLFW close flag.
func platformRequestClose(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.window.SetShouldClose(true)
}

// platformShouldClose returns whether GLFW reports the window as closing.
// Returns true if the internal window is nil.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window should close
func platformShouldClose(w *engineWindow) bool {
	if w.internalWindow == nil {
		return true
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.window.ShouldClose()
}

// platformTime returns the GLFW timer value in seconds.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#GetTime
func platformTime() float64 {
	return glfw.GetTime()
}

func platformSwapBuffers(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.window.SwapBuffers()
}

// platformPollEvents polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformPollEvents() {
	glfw.PollEvents()
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
// Uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	gw := w.internalWindow.(*glfwWindow)
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
// Returns an error if the internal window has not been initialized.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}
