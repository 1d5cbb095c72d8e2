package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-triangle/common"
	"github.com/Carmen-Shannon/oxy-triangle/engine/model"
	"github.com/Carmen-Shannon/oxy-triangle/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-triangle/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// transformUniformSize is the byte size of one mat4x4<f32>.
const transformUniformSize = 16 * 4

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	clearColor    wgpu.Color

	uniformBuffer   *wgpu.Buffer
	bindGroupLayout *wgpu.BindGroupLayout
	bindGroup       *wgpu.BindGroup
	pipeline        *wgpu.RenderPipeline

	vertexBuffer *wgpu.Buffer
	vertexCount  uint32

	// Frame state between BeginFrame and Present
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(win window.Window, forceFallbackAdapter bool, mode PresentMode, clearColor [4]float64) (*wgpuRendererBackendImpl, error) {
	runtime.LockOSThread()

	descriptor := win.SurfaceDescriptor()
	if descriptor == nil {
		return nil, fmt.Errorf("window has no surface descriptor")
	}

	b := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpuPresentMode(mode),
		clearColor: wgpu.Color{
			R: clearColor[0], G: clearColor[1], B: clearColor[2], A: clearColor[3],
		},
	}
	b.surface = b.instance.CreateSurface(descriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	b.configureSurface(win.Width(), win.Height())

	if err := b.initTransformBinding(); err != nil {
		return nil, err
	}
	return b, nil
}

// wgpuPresentMode maps the renderer PresentMode onto the WebGPU present mode.
func wgpuPresentMode(mode PresentMode) wgpu.PresentMode {
	switch mode {
	case PresentModeUncapped:
		return wgpu.PresentModeImmediate
	default:
		return wgpu.PresentModeFifo
	}
}

// configureSurface sizes the swapchain once. The window is not resizable.
func (b *wgpuRendererBackendImpl) configureSurface(width, height int) {
	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

// initTransformBinding creates the uniform buffer backing the transform matrix and its bind group (group 0, binding 0).
func (b *wgpuRendererBackendImpl) initTransformBinding() error {
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Transform Uniform Buffer",
		Size:  transformUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create transform buffer: %w", err)
	}
	b.uniformBuffer = buf

	entry := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	entry.Buffer.MinBindingSize = transformUniformSize

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Transform Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{entry},
	})
	if err != nil {
		return fmt.Errorf("failed to create transform bind group layout: %w", err)
	}
	b.bindGroupLayout = layout

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Transform Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buf,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create transform bind group: %w", err)
	}
	b.bindGroup = bindGroup

	return nil
}

func (b *wgpuRendererBackendImpl) InitGeometry(m model.Model) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	vertexData := common.SliceToBytes(m.VertexData())
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            m.Name() + " Vertex Buffer",
		Size:             uint64(len(vertexData)),
		Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(buf, 0, vertexData)

	b.vertexBuffer = buf
	b.vertexCount = uint32(m.VertexCount())
	return nil
}

func (b *wgpuRendererBackendImpl) InitProgram(vertex, fragment shader.Shader) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	vs, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: vertex.Key(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: vertex.Source(),
		},
	})
	if err != nil {
		return &shader.CompileError{Key: vertex.Key(), ShaderType: vertex.ShaderType(), Log: err.Error()}
	}
	defer vs.Release()

	fs, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: fragment.Key(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: fragment.Source(),
		},
	})
	if err != nil {
		return &shader.CompileError{Key: fragment.Key(), ShaderType: fragment.ShaderType(), Log: err.Error()}
	}
	defer fs.Release()

	layout, ok := shader.ParseWGSLVertexLayout(vertex.Source())
	if !ok {
		return &shader.CompileError{Key: vertex.Key(), ShaderType: vertex.ShaderType(), Log: "no usable @location inputs on the @vertex entry point"}
	}
	if layout.ArrayStride != model.ComponentsPerVertex*4 {
		return &shader.LinkError{Log: fmt.Sprintf("vertex stride %d does not match the %d-byte model layout", layout.ArrayStride, model.ComponentsPerVertex*4)}
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Triangle Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.bindGroupLayout},
	})
	if err != nil {
		return err
	}
	defer pipelineLayout.Release()

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Triangle Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: vertex.EntryPoint(),
			Buffers:    []wgpu.VertexBufferLayout{layout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: fragment.EntryPoint(),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return &shader.LinkError{Log: err.Error()}
	}
	b.pipeline = created

	return nil
}

func (b *wgpuRendererBackendImpl) SetTransform(m []float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.queue.WriteBuffer(b.uniformBuffer, 0, common.SliceToBytes(m[:16]))
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If a previous frame's surface texture is still held, don't acquire another one;
	// wgpu-native rejects a second acquire with "Surface image is already acquired".
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: b.clearColor,
			},
		},
	})

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) Draw() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// No pipeline means the shaders failed to build; the frame is cleared but nothing is drawn.
	if b.framePass == nil || b.pipeline == nil || b.vertexBuffer == nil {
		return
	}

	b.framePass.SetPipeline(b.pipeline)
	b.framePass.SetBindGroup(0, b.bindGroup, nil)
	b.framePass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)
	b.framePass.Draw(b.vertexCount, 1, 0, 0)
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pipeline != nil {
		b.pipeline.Release()
		b.pipeline = nil
	}
	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
		b.vertexBuffer = nil
	}
	if b.bindGroup != nil {
		b.bindGroup.Release()
		b.bindGroup = nil
	}
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
		b.bindGroupLayout = nil
	}
	if b.uniformBuffer != nil {
		b.uniformBuffer.Release()
		b.uniformBuffer = nil
	}
	b.queue = nil
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
