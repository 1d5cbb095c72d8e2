package engine

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-triangle/common"
	"github.com/Carmen-Shannon/oxy-triangle/engine/animation"
	"github.com/Carmen-Shannon/oxy-triangle/engine/model"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeWindow struct {
	keys        map[uint32]bool
	now         float64
	shouldClose bool
	closed      int
	polled      int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{keys: make(map[uint32]bool)}
}

func (w *fakeWindow) KeyPressed(keyCode uint32) bool             { return w.keys[keyCode] }
func (w *fakeWindow) RequestClose()                              { w.shouldClose = true }
func (w *fakeWindow) ShouldClose() bool                          { return w.shouldClose }
func (w *fakeWindow) Time() float64                              { return w.now }
func (w *fakeWindow) SwapBuffers()                               {}
func (w *fakeWindow) PollEvents()                                { w.polled++ }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) Close() error                               { w.closed++; return nil }
func (w *fakeWindow) Width() int                                 { return 1920 }
func (w *fakeWindow) Height() int                                { return 1080 }

type fakeRenderer struct {
	transforms [][]float32
	draws      int
	presents   int
	released   int
}

func (r *fakeRenderer) BackendType() renderer.RendererBackendType      { return renderer.BackendTypeGL }
func (r *fakeRenderer) InitGeometry(model.Model) error                 { return nil }
func (r *fakeRenderer) InitProgram(shader.Shader, shader.Shader) error { return nil }
func (r *fakeRenderer) SetTransform(m []float32) {
	r.transforms = append(r.transforms, append([]float32(nil), m...))
}
func (r *fakeRenderer) BeginFrame() error { return nil }
func (r *fakeRenderer) Draw()             { r.draws++ }
func (r *fakeRenderer) EndFrame()         {}
func (r *fakeRenderer) Present()          { r.presents++ }
func (r *fakeRenderer) Release()          { r.released++ }

func newTestEngine(options ...EngineBuilderOption) (*engine, *fakeWindow, *fakeRenderer) {
	w := newFakeWindow()
	r := &fakeRenderer{}
	opts := append([]EngineBuilderOption{WithWindow(w), WithRenderer(r)}, options...)
	return NewEngine(opts...).(*engine), w, r
}

func TestFrameDrawsOnce(t *testing.T) {
	e, w, r := newTestEngine()
	w.now = 0.25

	e.Frame()

	if r.draws != 1 || r.presents != 1 || len(r.transforms) != 1 {
		t.Fatalf("draws=%d presents=%d transforms=%d, want 1 each", r.draws, r.presents, len(r.transforms))
	}
	if w.polled != 1 {
		t.Errorf("PollEvents called %d times, want 1", w.polled)
	}
	if e.DeltaTime() != 0.25 {
		t.Errorf("DeltaTime() = %v, want 0.25", e.DeltaTime())
	}
	if e.State() != StateRunning {
		t.Errorf("State() = %v, want Running", e.State())
	}

	// Starting position translates by (-1, -0.75).
	got := r.transforms[0]
	if got[3] != animation.StartX || got[7] != animation.BaseY {
		t.Errorf("translation = (%v, %v), want (%v, %v)", got[3], got[7], animation.StartX, animation.BaseY)
	}
}

func TestFrameInput(t *testing.T) {
	tests := []struct {
		name  string
		keys  []uint32
		wantX float32
	}{
		{"idle", nil, animation.StartX},
		{"right", []uint32{common.KeyRight}, animation.StartX + animation.MoveStep},
		{"left", []uint32{common.KeyLeft}, animation.StartX - animation.MoveStep},
		{"both", []uint32{common.KeyLeft, common.KeyRight}, animation.StartX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, w, _ := newTestEngine()
			for _, k := range tt.keys {
				w.keys[k] = true
			}
			e.Frame()
			if got := e.Animation().OffsetX; got-tt.wantX > 1e-6 || tt.wantX-got > 1e-6 {
				t.Errorf("OffsetX = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestFrameJump(t *testing.T) {
	e, w, r := newTestEngine()
	w.keys[common.KeySpace] = true
	w.now = 1.0
	e.Frame()

	if !e.Animation().Jumping {
		t.Fatal("Jumping = false after Space, want true")
	}

	w.keys[common.KeySpace] = false
	w.now = 1.5
	e.Frame()

	last := r.transforms[len(r.transforms)-1]
	want := animation.BaseY + animation.JumpPeak
	if d := last[7] - want; d > 1e-5 || d < -1e-5 {
		t.Errorf("translation y at jump apex = %v, want %v", last[7], want)
	}
}

func TestEscapeTerminates(t *testing.T) {
	e, w, r := newTestEngine()
	w.keys[common.KeyEsc] = true

	e.Frame()
	if e.State() != StateClosingRequested {
		t.Fatalf("State() = %v after Escape, want ClosingRequested", e.State())
	}
	if r.draws != 1 {
		t.Errorf("draws = %d, want the Escape frame to still render", r.draws)
	}

	e.Frame()
	if e.State() != StateTerminated {
		t.Fatalf("State() = %v, want Terminated", e.State())
	}

	e.Frame()
	e.Run()
	if r.released != 1 || w.closed != 1 {
		t.Errorf("released=%d closed=%d, want 1 each", r.released, w.closed)
	}
	if r.draws != 1 {
		t.Errorf("draws = %d after termination, want 1", r.draws)
	}
}

func TestWindowCloseSignal(t *testing.T) {
	e, w, r := newTestEngine()
	w.shouldClose = true

	e.Run()

	if e.State() != StateTerminated {
		t.Fatalf("State() = %v, want Terminated", e.State())
	}
	if r.draws != 0 {
		t.Errorf("draws = %d, want no frame after a close signal", r.draws)
	}
	if r.released != 1 || w.closed != 1 {
		t.Errorf("released=%d closed=%d, want 1 each", r.released, w.closed)
	}
}

func TestRunUntilClose(t *testing.T) {
	e, w, r := newTestEngine()
	frames := 0
	// Close once the triangle has been drawn three times.
	for e.State() == StateRunning {
		e.Frame()
		frames++
		if frames == 3 {
			e.Quit()
		}
	}
	e.Run()

	if r.draws != 3 {
		t.Errorf("draws = %d, want 3", r.draws)
	}
	if w.closed != 1 || r.released != 1 {
		t.Errorf("released=%d closed=%d, want 1 each", r.released, w.closed)
	}
}

func TestRotationNotAppliedByDefault(t *testing.T) {
	e, _, r := newTestEngine()
	e.anim.RotationAngle = 45

	e.Frame()

	want := make([]float32, 16)
	common.Translation(want, animation.StartX, animation.BaseY)
	got := r.transforms[0]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("transform = %v, want translation only %v", got, want)
		}
	}
}

func TestRotationApplied(t *testing.T) {
	e, _, r := newTestEngine(WithRotationApplied(true))
	e.anim.RotationAngle = 90

	e.Frame()

	translation := make([]float32, 16)
	rotation := make([]float32, 16)
	want := make([]float32, 16)
	common.Translation(translation, animation.StartX, animation.BaseY)
	common.Rotation(rotation, 90)
	common.Mul4(want, translation, rotation)

	got := r.transforms[0]
	for i := range want {
		if d := got[i] - want[i]; d > 1e-6 || d < -1e-6 {
			t.Fatalf("transform = %v, want %v", got, want)
		}
	}
}

func TestEngineStateString(t *testing.T) {
	tests := map[EngineState]string{
		StateRunning:          "Running",
		StateClosingRequested: "ClosingRequested",
		StateTerminated:       "Terminated",
		EngineState(9):        "Unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("EngineState(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
