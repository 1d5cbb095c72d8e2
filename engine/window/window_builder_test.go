package window

import "testing"

func TestWindowBuilderOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []WindowBuilderOption
		want    engineWindow
	}{
		{
			name: "defaults",
			want: engineWindow{title: DefaultTitle, width: 1920, height: 1080, contextType: ContextOpenGL},
		},
		{
			name:    "title",
			options: []WindowBuilderOption{WithTitle("Jumping Triangle")},
			want:    engineWindow{title: "Jumping Triangle", width: 1920, height: 1080, contextType: ContextOpenGL},
		},
		{
			name:    "size and no client api",
			options: []WindowBuilderOption{WithSize(800, 600), WithContext(ContextNone)},
			want:    engineWindow{title: DefaultTitle, width: 800, height: 600, contextType: ContextNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &engineWindow{
				title:       DefaultTitle,
				width:       DefaultWidth,
				height:      DefaultHeight,
				contextType: ContextOpenGL,
			}
			for _, opt := range tt.options {
				opt(w)
			}
			if w.title != tt.want.title || w.width != tt.want.width || w.height != tt.want.height || w.contextType != tt.want.contextType {
				t.Errorf("got {%q %d %d %d}, want {%q %d %d %d}",
					w.title, w.width, w.height, w.contextType,
					tt.want.title, tt.want.width, tt.want.height, tt.want.contextType)
			}
		})
	}
}

func TestUninitializedWindow(t *testing.T) {
	w := &engineWindow{}
	if !w.ShouldClose() {
		t.Error("ShouldClose() = false on an uninitialized window, want true")
	}
	if w.KeyPressed(32) {
		t.Error("KeyPressed() = true on an uninitialized window, want false")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("SurfaceDescriptor() != nil on an uninitialized window")
	}
	if err := w.Close(); err == nil {
		t.Error("Close() = nil on an uninitialized window, want error")
	}
}
