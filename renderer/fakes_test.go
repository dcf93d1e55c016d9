package renderer

import (
	"errors"
	"fmt"

	"github.com/bloeys/texcube/gpu"
)

var errFake = errors.New("fake failure")

type fakeResource struct {
	name     string
	released int
}

func (r *fakeResource) Label() string {
	return r.name
}

func (r *fakeResource) Release() {
	r.released++
}

type fakeBuffer struct {
	fakeResource
	usage gpu.BufferUsage
	data  []byte
}

func (b *fakeBuffer) Usage() gpu.BufferUsage { return b.usage }
func (b *fakeBuffer) Length() int            { return len(b.data) }

type fakeTexture struct {
	fakeResource
	desc gpu.TextureDescriptor
}

func (t *fakeTexture) Width() int32                 { return t.desc.Width }
func (t *fakeTexture) Height() int32                { return t.desc.Height }
func (t *fakeTexture) PixelFormat() gpu.PixelFormat { return t.desc.PixelFormat }

type fakeDevice struct {
	fakeResource

	// failOn makes the named creation function fail: queue, buffer, pipeline, texture, depth or sampler
	failOn string

	resources []*fakeResource
	commands  []string
	buffers   []*fakeCommandBuffer

	pipelineDesc gpu.RenderPipelineDescriptor
	depthDesc    gpu.DepthStencilDescriptor
	samplerDesc  gpu.SamplerDescriptor
	textureDesc  gpu.TextureDescriptor

	// lastConstants is the data of the last SetVertexBytes call
	lastConstants []byte
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{fakeResource: fakeResource{name: "fake"}}
}

func (d *fakeDevice) track(r *fakeResource) {
	d.resources = append(d.resources, r)
}

func (d *fakeDevice) Name() string {
	return d.name
}

func (d *fakeDevice) NewCommandQueue() (gpu.CommandQueue, error) {

	if d.failOn == "queue" {
		return nil, errFake
	}

	q := &fakeQueue{fakeResource: fakeResource{name: "queue"}, device: d}
	d.track(&q.fakeResource)
	return q, nil
}

func (d *fakeDevice) NewBuffer(data []byte, usage gpu.BufferUsage, label string) (gpu.Buffer, error) {

	if d.failOn == "buffer" {
		return nil, errFake
	}

	b := &fakeBuffer{fakeResource: fakeResource{name: label}, usage: usage, data: data}
	d.track(&b.fakeResource)
	return b, nil
}

func (d *fakeDevice) NewTexture(desc *gpu.TextureDescriptor, pixels []byte) (gpu.Texture, error) {

	if d.failOn == "texture" {
		return nil, errFake
	}

	d.textureDesc = *desc
	t := &fakeTexture{fakeResource: fakeResource{name: desc.Label}, desc: *desc}
	d.track(&t.fakeResource)
	return t, nil
}

func (d *fakeDevice) NewRenderPipelineState(desc *gpu.RenderPipelineDescriptor) (gpu.RenderPipelineState, error) {

	if d.failOn == "pipeline" {
		return nil, fmt.Errorf("%w: link failed", gpu.ErrPipelineLink)
	}

	d.pipelineDesc = *desc
	p := &fakeResource{name: desc.Label}
	d.track(p)
	return p, nil
}

func (d *fakeDevice) NewDepthStencilState(desc *gpu.DepthStencilDescriptor) (gpu.DepthStencilState, error) {

	if d.failOn == "depth" {
		return nil, errFake
	}

	d.depthDesc = *desc
	s := &fakeResource{name: "depth"}
	d.track(s)
	return s, nil
}

func (d *fakeDevice) NewSamplerState(desc *gpu.SamplerDescriptor) (gpu.SamplerState, error) {

	if d.failOn == "sampler" {
		return nil, errFake
	}

	d.samplerDesc = *desc
	s := &fakeResource{name: "sampler"}
	d.track(s)
	return s, nil
}

// unreleased returns the names of created resources that were not released exactly once
func (d *fakeDevice) unreleased() []string {

	var names []string
	for _, r := range d.resources {
		if r.released != 1 {
			names = append(names, fmt.Sprintf("%s (released %d times)", r.name, r.released))
		}
	}

	return names
}

func (d *fakeDevice) record(format string, args ...any) {
	d.commands = append(d.commands, fmt.Sprintf(format, args...))
}

type fakeQueue struct {
	fakeResource
	device *fakeDevice
}

func (q *fakeQueue) NewCommandBuffer() gpu.CommandBuffer {
	cb := &fakeCommandBuffer{device: q.device}
	q.device.buffers = append(q.device.buffers, cb)
	return cb
}

type fakeCommandBuffer struct {
	device    *fakeDevice
	committed bool
	presented int
}

func (cb *fakeCommandBuffer) NewRenderCommandEncoder(pass *gpu.RenderPassDescriptor) gpu.RenderCommandEncoder {
	cb.device.record("NewRenderCommandEncoder")
	return &fakeEncoder{device: cb.device}
}

func (cb *fakeCommandBuffer) Present(drawable gpu.Drawable) {
	cb.presented++
	cb.device.record("Present")
}

func (cb *fakeCommandBuffer) Commit() {
	cb.committed = true
	cb.device.record("Commit")
}

type fakeEncoder struct {
	device *fakeDevice
}

func (e *fakeEncoder) PushDebugGroup(name string) {
	e.device.record("PushDebugGroup %s", name)
}

func (e *fakeEncoder) PopDebugGroup() {
	e.device.record("PopDebugGroup")
}

func (e *fakeEncoder) SetFrontFacingWinding(winding gpu.Winding) {
	e.device.record("SetFrontFacingWinding %d", winding)
}

func (e *fakeEncoder) SetCullMode(mode gpu.CullMode) {
	e.device.record("SetCullMode %d", mode)
}

func (e *fakeEncoder) SetDepthStencilState(state gpu.DepthStencilState) {
	e.device.record("SetDepthStencilState %s", state.(*fakeResource).name)
}

func (e *fakeEncoder) SetRenderPipelineState(state gpu.RenderPipelineState) {
	e.device.record("SetRenderPipelineState %s", state.Label())
}

func (e *fakeEncoder) SetVertexBuffer(buf gpu.Buffer, offset int, index int) {
	e.device.record("SetVertexBuffer %s %d %d", buf.Label(), offset, index)
}

func (e *fakeEncoder) SetVertexBytes(data []byte, index int) {
	e.device.lastConstants = append([]byte(nil), data...)
	e.device.record("SetVertexBytes %d %d", len(data), index)
}

func (e *fakeEncoder) SetFragmentTexture(tex gpu.Texture, index int) {
	e.device.record("SetFragmentTexture %s %d", tex.(*fakeTexture).name, index)
}

func (e *fakeEncoder) SetFragmentSamplerState(sampler gpu.SamplerState, index int) {
	e.device.record("SetFragmentSamplerState %s %d", sampler.(*fakeResource).name, index)
}

func (e *fakeEncoder) DrawIndexedPrimitives(primitive gpu.PrimitiveType, indexCount int, indexType gpu.IndexType, indexBuffer gpu.Buffer, indexBufferOffset int) {
	e.device.record("DrawIndexedPrimitives %d %d %d %s %d", primitive, indexCount, indexType, indexBuffer.Label(), indexBufferOffset)
}

func (e *fakeEncoder) EndEncoding() {
	e.device.record("EndEncoding")
}

type fakeDrawable struct {
	presented int
}

func (d *fakeDrawable) Present() {
	d.presented++
}

type fakeSurface struct {
	width, height int32
	fps           int

	noPass     bool
	noDrawable bool
	drawable   fakeDrawable
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{width: 800, height: 600, fps: 60}
}

func (s *fakeSurface) PreferredFramesPerSecond() int            { return s.fps }
func (s *fakeSurface) Bounds() (int32, int32)                   { return s.width, s.height }
func (s *fakeSurface) ColorPixelFormat() gpu.PixelFormat        { return gpu.PixelFormatBGRA8Unorm }
func (s *fakeSurface) DepthStencilPixelFormat() gpu.PixelFormat { return gpu.PixelFormatDepth32Float }
func (s *fakeSurface) SampleCount() int                         { return 4 }

func (s *fakeSurface) CurrentRenderPassDescriptor() (*gpu.RenderPassDescriptor, bool) {

	if s.noPass {
		return nil, false
	}

	return &gpu.RenderPassDescriptor{
		ColorLoadAction: gpu.LoadActionClear,
		ClearColor:      gpu.ClearColor{R: 1, G: 1, B: 1, A: 1},
		DepthLoadAction: gpu.LoadActionClear,
		ClearDepth:      1,
		Width:           s.width,
		Height:          s.height,
	}, true
}

func (s *fakeSurface) CurrentDrawable() (gpu.Drawable, bool) {

	if s.noDrawable {
		return nil, false
	}

	return &s.drawable, true
}
