package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestParseWGSLEntryPoint(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		shaderType ShaderType
		want       string
	}{
		{"triangle vertex", WGSLVertexSource, ShaderTypeVertex, "vs_main"},
		{"triangle fragment", WGSLFragmentSource, ShaderTypeFragment, "fs_main"},
		{"fragment missing", WGSLVertexSource, ShaderTypeFragment, ""},
		{"commented out", "// @vertex fn hidden() {}\n@vertex\nfn real() {}", ShaderTypeVertex, "real"},
		{"block comment", "/* @fragment /* nested */ fn hidden() */ @fragment fn shown() {}", ShaderTypeFragment, "shown"},
		{"unknown stage", WGSLVertexSource, ShaderType(7), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseWGSLEntryPoint(tt.source, tt.shaderType); got != tt.want {
				t.Errorf("ParseWGSLEntryPoint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseWGSLVertexLayout(t *testing.T) {
	t.Run("triangle", func(t *testing.T) {
		layout, ok := ParseWGSLVertexLayout(WGSLVertexSource)
		if !ok {
			t.Fatal("ParseWGSLVertexLayout() ok = false")
		}
		if layout.ArrayStride != 12 {
			t.Errorf("ArrayStride = %d, want 12", layout.ArrayStride)
		}
		if len(layout.Attributes) != 1 {
			t.Fatalf("Attributes = %v, want one", layout.Attributes)
		}
		if a := layout.Attributes[0]; a.Format != wgpu.VertexFormatFloat32x3 || a.ShaderLocation != 0 || a.Offset != 0 {
			t.Errorf("attribute = %+v, want Float32x3 at location 0 offset 0", a)
		}
	})

	t.Run("struct input", func(t *testing.T) {
		src := `
struct VertexIn {
    @location(1) color: vec4<f32>,
    @location(0) position: vec3<f32>,
};

struct VertexOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn main(in: VertexIn, @builtin(vertex_index) idx: u32) -> VertexOut {
    var out: VertexOut;
    return out;
}
`
		layout, ok := ParseWGSLVertexLayout(src)
		if !ok {
			t.Fatal("ParseWGSLVertexLayout() ok = false")
		}
		if layout.ArrayStride != 28 {
			t.Errorf("ArrayStride = %d, want 28", layout.ArrayStride)
		}
		if len(layout.Attributes) != 2 {
			t.Fatalf("Attributes = %v, want two", layout.Attributes)
		}
		if layout.Attributes[0].ShaderLocation != 0 || layout.Attributes[1].Offset != 12 {
			t.Errorf("attributes = %+v, want position first and color at offset 12", layout.Attributes)
		}
	})

	failures := map[string]string{
		"no vertex stage": WGSLFragmentSource,
		"no inputs":       "@vertex fn main(@builtin(vertex_index) i: u32) -> @builtin(position) vec4<f32> { return vec4<f32>(); }",
		"unknown type":    "@vertex fn main(@location(0) m: mat2x2<f32>) -> @builtin(position) vec4<f32> { return vec4<f32>(); }",
	}
	for name, src := range failures {
		t.Run(name, func(t *testing.T) {
			if _, ok := ParseWGSLVertexLayout(src); ok {
				t.Error("ParseWGSLVertexLayout() ok = true, want false")
			}
		})
	}
}
