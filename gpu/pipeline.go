package gpu

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shape2d"
)

// frameUniformSize is the byte size of the frame uniform buffer:
// ortho (mat4x4<f32>) + transform (mat4x4<f32>) = 128 bytes.
const frameUniformSize = 2 * mat4Size

// modelUniformSize is the byte size of the model uniform buffer:
// one mat4x4<f32> = 64 bytes.
const modelUniformSize = mat4Size

// Uniforms holds the per-frame matrices consumed by the shape vertex
// stage: the orthographic projection derived from the viewport and a
// frame-wide transform (identity unless the caller sets one).
type Uniforms struct {
	Ortho     Mat4
	Transform Mat4
}

// encode serializes the uniforms in shader layout order.
func (u Uniforms) encode() []byte {
	buf := make([]byte, frameUniformSize)
	u.Ortho.encode(buf[0:mat4Size])
	u.Transform.encode(buf[mat4Size:frameUniformSize])
	return buf
}

// Pipeline is the render pipeline that draws shape2d vertex buffers.
// It declares the shape vertex layout, binds the frame uniforms at
// group 0 and the model transform at group 1, and records draw calls
// into a host-owned render pass.
//
// A Pipeline is bound to one viewport; call Resize when the surface
// changes so the orthographic projection tracks the new dimensions.
type Pipeline struct {
	device hal.Device
	queue  hal.Queue

	// GPU objects for the render pipeline.
	shader      hal.ShaderModule
	frameLayout hal.BindGroupLayout
	modelLayout hal.BindGroupLayout
	pipeLayout  hal.PipelineLayout
	pipeline    hal.RenderPipeline

	// Uniform buffers and their bind groups.
	frameBuf   hal.Buffer
	modelBuf   hal.Buffer
	frameGroup hal.BindGroup
	modelGroup hal.BindGroup

	uniforms Uniforms
	width    uint32
	height   uint32
}

// NewPipeline creates the shape render pipeline for a viewport of the
// given pixel size. The device and queue are owned by the host and must
// outlive the pipeline.
func NewPipeline(device hal.Device, queue hal.Queue, width, height uint32) (*Pipeline, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("gpu: invalid viewport %dx%d", width, height)
	}

	p := &Pipeline{
		device: device,
		queue:  queue,
		uniforms: Uniforms{
			Ortho:     Ortho2D(float32(width), float32(height)),
			Transform: Mat4Identity(),
		},
		width:  width,
		height: height,
	}
	if err := p.createPipeline(); err != nil {
		p.Destroy()
		return nil, err
	}
	if err := p.createBindings(); err != nil {
		p.Destroy()
		return nil, err
	}

	shape2d.Logger().Info("gpu: shape pipeline created",
		slog.Uint64("width", uint64(width)),
		slog.Uint64("height", uint64(height)))
	return p, nil
}

// createPipeline compiles the shader, creates both bind group layouts
// and the render pipeline (triangle list, no culling, premultiplied
// alpha blending).
func (p *Pipeline) createPipeline() error {
	shader, err := createShaderModule(p.device, "shape_shader")
	if err != nil {
		return fmt.Errorf("compile shape shader: %w", err)
	}
	p.shader = shader

	frameLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "shape_frame_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create frame uniform layout: %w", err)
	}
	p.frameLayout = frameLayout

	modelLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "shape_model_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create model uniform layout: %w", err)
	}
	p.modelLayout = modelLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "shape_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.frameLayout, p.modelLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "shape_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create shape pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// createBindings uploads the initial uniform buffers and creates the
// bind groups for both sets.
func (p *Pipeline) createBindings() error {
	frameBuf, err := p.createAndUploadBuffer("shape_frame_uniforms", p.uniforms.encode(),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("create frame uniform buffer: %w", err)
	}
	p.frameBuf = frameBuf

	model := make([]byte, modelUniformSize)
	Mat4Identity().encode(model)
	modelBuf, err := p.createAndUploadBuffer("shape_model_uniforms", model,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("create model uniform buffer: %w", err)
	}
	p.modelBuf = modelBuf

	frameGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "shape_frame_bind",
		Layout: p.frameLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: frameBuf.NativeHandle(), Offset: 0, Size: frameUniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create frame bind group: %w", err)
	}
	p.frameGroup = frameGroup

	modelGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "shape_model_bind",
		Layout: p.modelLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: modelBuf.NativeHandle(), Offset: 0, Size: modelUniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create model bind group: %w", err)
	}
	p.modelGroup = modelGroup

	return nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (p *Pipeline) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	p.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// Resize recomputes the orthographic projection for a new viewport and
// rewrites the frame uniform buffer. Everything else is unchanged.
func (p *Pipeline) Resize(width, height uint32) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	p.uniforms.Ortho = Ortho2D(float32(width), float32(height))
	p.queue.WriteBuffer(p.frameBuf, 0, p.uniforms.encode())

	shape2d.Logger().Info("gpu: shape pipeline resized",
		slog.Uint64("width", uint64(width)),
		slog.Uint64("height", uint64(height)))
}

// SetTransform replaces the frame-wide transform and rewrites the frame
// uniform buffer. The default is the identity.
func (p *Pipeline) SetTransform(m Mat4) {
	p.uniforms.Transform = m
	p.queue.WriteBuffer(p.frameBuf, 0, p.uniforms.encode())
}

// SetModel replaces the model transform bound at group 1. The default
// is the identity.
func (p *Pipeline) SetModel(m Mat4) {
	buf := make([]byte, modelUniformSize)
	m.encode(buf)
	p.queue.WriteBuffer(p.modelBuf, 0, buf)
}

// Uniforms returns the current frame uniforms.
func (p *Pipeline) Uniforms() Uniforms {
	return p.uniforms
}

// RecordDraws records a draw of the given vertex buffer into an
// existing render pass. The render pass is owned by the host. This is a
// no-op for empty buffers.
func (p *Pipeline) RecordDraws(rp hal.RenderPassEncoder, buf *VertexBuffer) {
	if buf == nil || buf.count == 0 {
		return
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, p.frameGroup, nil)
	rp.SetBindGroup(1, p.modelGroup, nil)
	rp.SetVertexBuffer(0, buf.buf, 0)
	rp.Draw(buf.count, 1, 0, 0)
}

// Destroy releases all GPU resources held by the pipeline, in reverse
// creation order. Safe to call more than once.
func (p *Pipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.modelGroup != nil {
		p.device.DestroyBindGroup(p.modelGroup)
		p.modelGroup = nil
	}
	if p.frameGroup != nil {
		p.device.DestroyBindGroup(p.frameGroup)
		p.frameGroup = nil
	}
	if p.modelBuf != nil {
		p.device.DestroyBuffer(p.modelBuf)
		p.modelBuf = nil
	}
	if p.frameBuf != nil {
		p.device.DestroyBuffer(p.frameBuf)
		p.frameBuf = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.modelLayout != nil {
		p.device.DestroyBindGroupLayout(p.modelLayout)
		p.modelLayout = nil
	}
	if p.frameLayout != nil {
		p.device.DestroyBindGroupLayout(p.frameLayout)
		p.frameLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// vertexLayout returns the vertex buffer layout for the shape pipeline.
// It must match shape2d.Vertex's wire layout exactly or draws render
// garbage.
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: shape2d.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32, Offset: 12, ShaderLocation: 1},  // rotation angle
				{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2}, // center of rotation
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 24, ShaderLocation: 3}, // color
			},
		},
	}
}
