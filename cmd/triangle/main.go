package main

import (
	"log"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-triangle/engine"
	"github.com/Carmen-Shannon/oxy-triangle/engine/model"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-triangle/engine/window"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	// ── Window ──────────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(window.DefaultTitle),
		window.WithSize(window.DefaultWidth, window.DefaultHeight),
		window.WithContext(window.ContextOpenGL),
	)
	if err != nil {
		log.Println("Failed to create GLFW window:", err)
		os.Exit(-1)
	}

	// ── Renderer ────────────────────────────────────────────────────────
	r, err := renderer.NewRenderer(renderer.BackendTypeGL, win)
	if err != nil {
		log.Println("Failed to initialize renderer:", err)
		_ = win.Close()
		os.Exit(-1)
	}

	// ── Geometry ────────────────────────────────────────────────────────
	if err := r.InitGeometry(model.Triangle()); err != nil {
		log.Println("Failed to upload triangle:", err)
		r.Release()
		_ = win.Close()
		os.Exit(-1)
	}

	// ── Shaders ─────────────────────────────────────────────────────────
	// A broken program is logged by the renderer and the demo keeps running.
	vertexShader, fragmentShader := shader.TriangleGLSL()
	_ = r.InitProgram(vertexShader, fragmentShader)

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithProfiling(false),
	)

	eng.Run()
}
