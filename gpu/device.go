// Package gpu describes the GPU objects the renderer works with: a device that
// creates resources and pipeline state, and a command queue whose command
// buffers record render passes and present drawables.
//
// Backends (see gpu/gpugl) implement these interfaces. All objects are owned by
// the caller that created them and must be released by it.
package gpu

import "github.com/bloeys/texcube/shaders"

type Device interface {
	Name() string

	NewCommandQueue() (CommandQueue, error)
	NewBuffer(data []byte, usage BufferUsage, label string) (Buffer, error)
	NewTexture(desc *TextureDescriptor, pixels []byte) (Texture, error)
	NewRenderPipelineState(desc *RenderPipelineDescriptor) (RenderPipelineState, error)
	NewDepthStencilState(desc *DepthStencilDescriptor) (DepthStencilState, error)
	NewSamplerState(desc *SamplerDescriptor) (SamplerState, error)

	Release()
}

type Buffer interface {
	Label() string
	Usage() BufferUsage
	// Length is the size of the buffer in bytes
	Length() int
	Release()
}

type Texture interface {
	Width() int32
	Height() int32
	PixelFormat() PixelFormat
	Release()
}

type SamplerState interface {
	Release()
}

type DepthStencilState interface {
	Release()
}

type RenderPipelineState interface {
	Label() string
	Release()
}

type CommandQueue interface {
	NewCommandBuffer() CommandBuffer
	Release()
}

// CommandBuffer collects encoded work. Nothing reaches the GPU before Commit,
// and Commit does not wait for the GPU to finish.
type CommandBuffer interface {
	NewRenderCommandEncoder(pass *RenderPassDescriptor) RenderCommandEncoder
	// Present schedules the drawable to be shown once the buffer's work is submitted
	Present(drawable Drawable)
	Commit()
}

type RenderCommandEncoder interface {
	PushDebugGroup(name string)
	PopDebugGroup()

	SetFrontFacingWinding(winding Winding)
	SetCullMode(mode CullMode)
	SetDepthStencilState(state DepthStencilState)
	SetRenderPipelineState(state RenderPipelineState)

	SetVertexBuffer(buf Buffer, offset int, index int)
	// SetVertexBytes copies data, so the caller may reuse it right after the call
	SetVertexBytes(data []byte, index int)
	SetFragmentTexture(tex Texture, index int)
	SetFragmentSamplerState(sampler SamplerState, index int)

	DrawIndexedPrimitives(primitive PrimitiveType, indexCount int, indexType IndexType, indexBuffer Buffer, indexBufferOffset int)

	EndEncoding()
}

// Drawable is a displayable image owned by the host view
type Drawable interface {
	Present()
}

// Surface is the host view that owns the drawables and their formats.
// The pass descriptor and drawable are optional and may be unavailable for a frame
// (e.g. while the window is minimized).
type Surface interface {
	PreferredFramesPerSecond() int
	// Bounds is the size of the view, which might differ from the drawable size on high DPI displays
	Bounds() (width, height int32)

	ColorPixelFormat() PixelFormat
	DepthStencilPixelFormat() PixelFormat
	SampleCount() int

	CurrentRenderPassDescriptor() (*RenderPassDescriptor, bool)
	CurrentDrawable() (Drawable, bool)
}

type TextureDescriptor struct {
	Label       string
	PixelFormat PixelFormat
	Width       int32
	Height      int32
}

type RenderPipelineDescriptor struct {
	Label            string
	VertexFunction   *shaders.Function
	FragmentFunction *shaders.Function
	VertexDescriptor VertexDescriptor

	SampleCount      int
	ColorPixelFormat PixelFormat
	DepthPixelFormat PixelFormat
}

type DepthStencilDescriptor struct {
	DepthCompareFunction CompareFunction
	DepthWriteEnabled    bool
}

type SamplerDescriptor struct {
	SAddressMode SamplerAddressMode
	TAddressMode SamplerAddressMode
	MinFilter    SamplerMinMagFilter
	MagFilter    SamplerMinMagFilter
}

type RenderPassDescriptor struct {
	ColorLoadAction LoadAction
	ClearColor      ClearColor

	DepthLoadAction LoadAction
	ClearDepth      float64

	// Size of the render target in pixels
	Width  int32
	Height int32
}
