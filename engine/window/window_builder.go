package window

const (
	// DefaultTitle is the title shown in the window title bar.
	DefaultTitle = "Controllable Triangle"

	// DefaultWidth is the fixed window width in pixels.
	DefaultWidth = 1920

	// DefaultHeight is the fixed window height in pixels.
	DefaultHeight = 1080
)

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the window size. The window is not resizable.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
		w.height = height
	}
}

// WithContext selects the client API created alongside the window.
// Use ContextNone when rendering through the WebGPU backend.
//
// Parameters:
//   - contextType: ContextOpenGL (default) or ContextNone
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithContext(contextType ContextType) WindowBuilderOption {
	return func(w *engineWindow) {
		w.contextType = contextType
	}
}
