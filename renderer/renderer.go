// Package renderer draws a lit, textured, rotating mesh into a gpu.Surface.
//
// A Renderer is created once with New, then driven by the host calling OnDraw
// every frame and OnResize when the drawable size changes.
package renderer

import (
	"github.com/bloeys/texcube/assets"
	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/logging"
	"github.com/bloeys/texcube/meshes"
)

const (
	vertexBufferIndex    = 0
	constantsBufferIndex = 1
	textureIndex         = 0
	samplerIndex         = 0

	debugGroupName = "Draw Cube"
	cubeSize       = 1.0

	fallbackFPS = 60
)

var logger = logging.New("renderer")

// DeviceFunc acquires the device the Renderer creates its resources on
type DeviceFunc func() (gpu.Device, error)

type Renderer struct {
	surface gpu.Surface
	opts    Options

	device              gpu.Device
	commandQueue        gpu.CommandQueue
	renderPipelineState gpu.RenderPipelineState
	depthStencilState   gpu.DepthStencilState
	sampler             gpu.SamplerState
	texture             gpu.Texture
	mesh                *meshes.Mesh

	elapsed        float64
	aspect         float32
	constants      Constants
	constantsBytes []byte
}

// New creates every GPU object the Renderer needs. On failure everything created so far is
// released and the returned error is an *InitError.
func New(surface gpu.Surface, acquire DeviceFunc, store assets.Store, opts Options) (*Renderer, error) {

	r := &Renderer{
		surface:        surface,
		opts:           opts.withDefaults(),
		aspect:         1,
		constantsBytes: make([]byte, ConstantsSize),
	}
	r.updateAspect()

	if err := r.init(acquire, store); err != nil {
		r.Release()
		return nil, err
	}

	// Valid constants before the first frame
	r.constants = ComputeConstants(r.elapsed, r.aspect)

	logger.Infof("Renderer ready on device '%s' (mesh '%s', texture '%s', %s timestep)", r.device.Name(), r.mesh.Name, r.opts.TextureName, r.opts.Timestep)
	return r, nil
}

func (r *Renderer) init(acquire DeviceFunc, store assets.Store) error {

	device, err := acquire()
	if err != nil || device == nil {
		return newInitError(ErrNoCompatibleDevice, err, "acquiring device")
	}
	r.device = device

	r.commandQueue, err = device.NewCommandQueue()
	if err != nil {
		return newInitError(ErrNoCompatibleDevice, err, "creating command queue")
	}

	r.renderPipelineState, err = buildRenderPipeline(device, r.surface, r.opts.ShaderLibrary)
	if err != nil {
		logger.Error("Unable to compile render pipeline state")
		return newInitError(ErrPipelineCompilation, err, "building render pipeline")
	}

	geom := r.opts.Geometry
	if geom == nil {
		geom = meshes.NewCubeGeometry(cubeSize)
	}

	r.mesh, err = meshes.NewMesh(device, r.opts.MeshName, geom)
	if err != nil {
		return newInitError(ErrAssetLoad, err, "building mesh")
	}

	texOpts := r.opts.TextureOptions
	r.texture, err = assets.LoadTexture(device, store, r.opts.TextureName, &texOpts)
	if err != nil {
		logger.Errorf("Unable to load texture '%s'", r.opts.TextureName)
		return newInitError(ErrAssetLoad, err, "loading texture")
	}

	// Passes when fragments are nearer to the camera than previous fragments
	r.depthStencilState, err = buildDepthStencilState(device, gpu.CompareFunctionLess, true)
	if err != nil {
		return newInitError(ErrNoCompatibleDevice, err, "creating depth stencil state")
	}

	// Wraps in both directions with bilinear filtering
	r.sampler, err = buildSamplerState(device, gpu.SamplerAddressModeRepeat, gpu.SamplerMinMagFilterLinear)
	if err != nil {
		return newInitError(ErrNoCompatibleDevice, err, "creating sampler state")
	}

	return nil
}

// Update advances the animation by timestep seconds and recomputes the constants
func (r *Renderer) Update(timestep float64) {

	r.elapsed += timestep
	r.updateAspect()
	r.constants = ComputeConstants(r.elapsed, r.aspect)
}

// updateAspect keeps the previous aspect ratio while the surface has no area (e.g. minimized)
func (r *Renderer) updateAspect() {

	w, h := r.surface.Bounds()
	if w <= 0 || h <= 0 {
		return
	}

	r.aspect = float32(w) / float32(h)
}

// Draw encodes one frame with the current constants and commits it.
// Nothing is encoded when the surface has no render pass descriptor.
func (r *Renderer) Draw(surface gpu.Surface) {

	pass, ok := surface.CurrentRenderPassDescriptor()
	if !ok {
		logger.Debug("No render pass descriptor, skipping frame")
		return
	}

	commandBuffer := r.commandQueue.NewCommandBuffer()
	enc := commandBuffer.NewRenderCommandEncoder(pass)

	enc.PushDebugGroup(debugGroupName)

	// Vertices are specified counter-clockwise
	enc.SetFrontFacingWinding(gpu.WindingCounterClockwise)
	enc.SetCullMode(gpu.CullModeBack)

	enc.SetDepthStencilState(r.depthStencilState)
	enc.SetRenderPipelineState(r.renderPipelineState)

	enc.SetVertexBuffer(r.mesh.VertexBuffer, 0, vertexBufferIndex)

	r.constantsBytes = r.constants.Bytes(r.constantsBytes)
	enc.SetVertexBytes(r.constantsBytes, constantsBufferIndex)

	enc.SetFragmentTexture(r.texture, textureIndex)
	enc.SetFragmentSamplerState(r.sampler, samplerIndex)

	enc.DrawIndexedPrimitives(r.mesh.PrimitiveType, r.mesh.IndexCount, r.mesh.IndexType, r.mesh.IndexBuffer, 0)

	enc.PopDebugGroup()
	enc.EndEncoding()

	if drawable, ok := surface.CurrentDrawable(); ok {
		commandBuffer.Present(drawable)
	}

	commandBuffer.Commit()
}

// OnDraw is the per-frame callback of the host view
func (r *Renderer) OnDraw(surface gpu.Surface) {
	r.surface = surface
	r.Update(r.timestep(surface))
	r.Draw(surface)
}

func (r *Renderer) OnResize(width, height int32) {
	logger.Debugf("Drawable size changed to %dx%d", width, height)
}

func (r *Renderer) timestep(surface gpu.Surface) float64 {

	if r.opts.Timestep == TimestepMeasured {
		return r.opts.MeasuredDT()
	}

	fps := surface.PreferredFramesPerSecond()
	if fps <= 0 {
		fps = fallbackFPS
	}

	return 1.0 / float64(fps)
}

func (r *Renderer) Constants() Constants {
	return r.constants
}

// ElapsedTime is the animation time in seconds
func (r *Renderer) ElapsedTime() float64 {
	return r.elapsed
}

// Release frees every GPU object owned by the Renderer, including the device. It is safe to call more than once.
func (r *Renderer) Release() {

	if r.sampler != nil {
		r.sampler.Release()
		r.sampler = nil
	}

	if r.depthStencilState != nil {
		r.depthStencilState.Release()
		r.depthStencilState = nil
	}

	if r.texture != nil {
		r.texture.Release()
		r.texture = nil
	}

	if r.mesh != nil {
		r.mesh.Release()
		r.mesh = nil
	}

	if r.renderPipelineState != nil {
		r.renderPipelineState.Release()
		r.renderPipelineState = nil
	}

	if r.commandQueue != nil {
		r.commandQueue.Release()
		r.commandQueue = nil
	}

	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
}
