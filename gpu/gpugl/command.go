package gpugl

import (
	"strings"

	"github.com/bloeys/texcube/assert"
	"github.com/bloeys/texcube/buffers"
	"github.com/bloeys/texcube/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	_ gpu.CommandQueue         = &CommandQueue{}
	_ gpu.CommandBuffer        = &CommandBuffer{}
	_ gpu.RenderCommandEncoder = &RenderCommandEncoder{}
)

type CommandQueue struct {
	// uniformBufs backs SetVertexBytes, one buffer per binding slot
	uniformBufs map[int]*buffers.UniformBuffer
}

func (q *CommandQueue) NewCommandBuffer() gpu.CommandBuffer {
	return &CommandBuffer{queue: q}
}

func (q *CommandQueue) uniformBuffer(slot int, size int) *buffers.UniformBuffer {

	ub, ok := q.uniformBufs[slot]
	if !ok {
		newUb := buffers.NewUniformBuffer(uint32(size))
		ub = &newUb
		q.uniformBufs[slot] = ub
	}

	return ub
}

func (q *CommandQueue) Release() {

	for slot, ub := range q.uniformBufs {
		ub.Delete()
		delete(q.uniformBufs, slot)
	}
}

type CommandBuffer struct {
	queue     *CommandQueue
	ops       []func()
	drawables []gpu.Drawable
	encoding  bool
	committed bool
}

func (cb *CommandBuffer) record(op func()) {
	assert.T(!cb.committed, "Recording into a committed command buffer")
	cb.ops = append(cb.ops, op)
}

func (cb *CommandBuffer) NewRenderCommandEncoder(pass *gpu.RenderPassDescriptor) gpu.RenderCommandEncoder {

	assert.T(!cb.encoding, "A render command encoder is already active on this command buffer")
	cb.encoding = true

	passCopy := *pass
	cb.record(func() {

		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, passCopy.Width, passCopy.Height)

		var clearMask uint32
		if passCopy.ColorLoadAction == gpu.LoadActionClear {
			c := passCopy.ClearColor
			gl.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
			clearMask |= gl.COLOR_BUFFER_BIT
		}

		if passCopy.DepthLoadAction == gpu.LoadActionClear {
			// Clearing depth respects the depth mask
			gl.DepthMask(true)
			gl.ClearDepth(passCopy.ClearDepth)
			clearMask |= gl.DEPTH_BUFFER_BIT
		}

		if clearMask != 0 {
			gl.Clear(clearMask)
		}
	})

	return &RenderCommandEncoder{
		cb:            cb,
		vertexBuffers: map[int]vertexBinding{},
	}
}

func (cb *CommandBuffer) Present(drawable gpu.Drawable) {
	assert.T(!cb.committed, "Presenting on a committed command buffer")
	cb.drawables = append(cb.drawables, drawable)
}

// Commit runs the recorded work then presents the scheduled drawables
func (cb *CommandBuffer) Commit() {

	assert.T(!cb.committed, "Command buffer committed twice")
	assert.T(!cb.encoding, "Command buffer committed while an encoder is still active")
	cb.committed = true

	for _, op := range cb.ops {
		op()
	}
	cb.ops = nil

	for _, d := range cb.drawables {
		d.Present()
	}
	cb.drawables = nil
}

type vertexBinding struct {
	buf    *Buffer
	offset int
}

type RenderCommandEncoder struct {
	cb            *CommandBuffer
	groups        []string
	pipeline      *RenderPipelineState
	vertexBuffers map[int]vertexBinding
	ended         bool
}

func (e *RenderCommandEncoder) record(op func()) {
	assert.T(!e.ended, "Encoding on an ended render command encoder")
	e.cb.record(op)
}

// PushDebugGroup names the following commands in error logs. GL 4.1 has no debug groups of its own.
func (e *RenderCommandEncoder) PushDebugGroup(name string) {
	e.groups = append(e.groups, name)
}

func (e *RenderCommandEncoder) PopDebugGroup() {
	assert.T(len(e.groups) > 0, "PopDebugGroup without a matching PushDebugGroup")
	e.groups = e.groups[:len(e.groups)-1]
}

func (e *RenderCommandEncoder) SetFrontFacingWinding(winding gpu.Winding) {
	glWinding := windingToGL(winding)
	e.record(func() {
		gl.FrontFace(glWinding)
	})
}

func (e *RenderCommandEncoder) SetCullMode(mode gpu.CullMode) {
	e.record(func() {

		switch mode {
		case gpu.CullModeNone:
			gl.Disable(gl.CULL_FACE)
		case gpu.CullModeFront:
			gl.Enable(gl.CULL_FACE)
			gl.CullFace(gl.FRONT)
		case gpu.CullModeBack:
			gl.Enable(gl.CULL_FACE)
			gl.CullFace(gl.BACK)
		}
	})
}

func (e *RenderCommandEncoder) SetDepthStencilState(state gpu.DepthStencilState) {
	s := state.(*DepthStencilState)
	e.record(s.apply)
}

func (e *RenderCommandEncoder) SetRenderPipelineState(state gpu.RenderPipelineState) {
	e.pipeline = state.(*RenderPipelineState)
	e.record(e.pipeline.bind)
}

func (e *RenderCommandEncoder) SetVertexBuffer(buf gpu.Buffer, offset int, index int) {

	b := buf.(*Buffer)
	assert.T(b.usage == gpu.BufferUsageVertex, "Buffer '%s' is not a vertex buffer", b.label)

	e.vertexBuffers[index] = vertexBinding{buf: b, offset: offset}
}

func (e *RenderCommandEncoder) SetVertexBytes(data []byte, index int) {

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	ub := e.cb.queue.uniformBuffer(index, len(dataCopy))
	e.record(func() {
		ub.SetData(dataCopy)
		ub.SetBindPoint(uint32(index))
	})
}

func (e *RenderCommandEncoder) SetFragmentTexture(tex gpu.Texture, index int) {
	t := tex.(*Texture)
	e.record(func() {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(index))
		gl.BindTexture(gl.TEXTURE_2D, t.Id)
	})
}

// SetFragmentSamplerState applies to the texture bound at the same index
func (e *RenderCommandEncoder) SetFragmentSamplerState(sampler gpu.SamplerState, index int) {
	s := sampler.(*SamplerState)
	e.record(func() {
		gl.BindSampler(uint32(index), s.Id)
	})
}

func (e *RenderCommandEncoder) DrawIndexedPrimitives(primitive gpu.PrimitiveType, indexCount int, indexType gpu.IndexType, indexBuffer gpu.Buffer, indexBufferOffset int) {

	assert.T(e.pipeline != nil, "DrawIndexedPrimitives called before SetRenderPipelineState")

	ib := indexBuffer.(*Buffer)
	assert.T(ib.usage == gpu.BufferUsageIndex, "Buffer '%s' is not an index buffer", ib.label)

	vb, ok := e.vertexBuffers[e.pipeline.bufferIndex]
	assert.T(ok, "No vertex buffer set at index %d for pipeline '%s'", e.pipeline.bufferIndex, e.pipeline.label)

	pipeline := e.pipeline
	groupPath := strings.Join(e.groups, "/")
	mode := primitiveToGL(primitive)
	glIndexType := indexTypeToGL(indexType)

	e.record(func() {

		pipeline.bindVertexBuffer(&vb.buf.vb, vb.offset)
		pipeline.vao.SetIndexBuffer(&ib.ib)

		gl.DrawElementsWithOffset(mode, int32(indexCount), glIndexType, uintptr(indexBufferOffset))

		if glErr := gl.GetError(); glErr != gl.NO_ERROR {
			logger.Errorf("Draw in group '%s' with pipeline '%s' failed. OpenGL Error=%d", groupPath, pipeline.label, glErr)
		}
	})
}

func (e *RenderCommandEncoder) EndEncoding() {

	assert.T(!e.ended, "EndEncoding called twice")
	assert.T(len(e.groups) == 0, "EndEncoding called with %d unpopped debug groups", len(e.groups))

	e.record(func() {
		gl.BindVertexArray(0)
	})

	e.ended = true
	e.cb.encoding = false
}
