package renderer

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/bloeys/texcube/assets"
	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/res"
)

func bundledStore() assets.Store {
	return assets.NewFSStore(res.Textures, "textures")
}

func acquireFake(d *fakeDevice) DeviceFunc {
	return func() (gpu.Device, error) {
		return d, nil
	}
}

func newTestRenderer(t *testing.T) (*Renderer, *fakeDevice, *fakeSurface) {

	t.Helper()

	device := newFakeDevice()
	surface := newFakeSurface()

	r, err := New(surface, acquireFake(device), bundledStore(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	return r, device, surface
}

func TestNewCreatesResources(t *testing.T) {

	r, device, _ := newTestRenderer(t)
	defer r.Release()

	p := device.pipelineDesc
	if p.Label != "Render Pipeline" || p.SampleCount != 4 || p.ColorPixelFormat != gpu.PixelFormatBGRA8Unorm || p.DepthPixelFormat != gpu.PixelFormatDepth32Float {
		t.Fatalf("unexpected pipeline descriptor %+v", p)
	}

	if p.VertexFunction.Name != "vertex_transform" || p.FragmentFunction.Name != "fragment_lit_textured" {
		t.Fatalf("expected vertex_transform and fragment_lit_textured; got %s and %s", p.VertexFunction.Name, p.FragmentFunction.Name)
	}

	if p.VertexDescriptor.Stride != 32 || len(p.VertexDescriptor.Attributes) != 3 {
		t.Fatalf("unexpected vertex descriptor %+v", p.VertexDescriptor)
	}

	if device.depthDesc != (gpu.DepthStencilDescriptor{DepthCompareFunction: gpu.CompareFunctionLess, DepthWriteEnabled: true}) {
		t.Fatalf("unexpected depth stencil descriptor %+v", device.depthDesc)
	}

	expSampler := gpu.SamplerDescriptor{
		SAddressMode: gpu.SamplerAddressModeRepeat,
		TAddressMode: gpu.SamplerAddressModeRepeat,
		MinFilter:    gpu.SamplerMinMagFilterLinear,
		MagFilter:    gpu.SamplerMinMagFilterLinear,
	}
	if device.samplerDesc != expSampler {
		t.Fatalf("unexpected sampler descriptor %+v", device.samplerDesc)
	}

	if device.textureDesc.Label != "checkerboard" || device.textureDesc.Width != 256 || device.textureDesc.Height != 256 {
		t.Fatalf("unexpected texture descriptor %+v", device.textureDesc)
	}

	if r.mesh.IndexCount != 36 || r.mesh.IndexType != gpu.IndexTypeUint16 || r.mesh.PrimitiveType != gpu.PrimitiveTypeTriangle {
		t.Fatalf("unexpected mesh %+v", r.mesh)
	}

	// Nothing is encoded until the first frame
	if len(device.buffers) != 0 || len(device.commands) != 0 {
		t.Fatalf("expected no command buffers before the first frame; got %d", len(device.buffers))
	}
}

func TestFrameCommandOrder(t *testing.T) {

	r, device, surface := newTestRenderer(t)
	defer r.Release()

	r.OnDraw(surface)

	exp := []string{
		"NewRenderCommandEncoder",
		"PushDebugGroup Draw Cube",
		fmt.Sprintf("SetFrontFacingWinding %d", gpu.WindingCounterClockwise),
		fmt.Sprintf("SetCullMode %d", gpu.CullModeBack),
		"SetDepthStencilState depth",
		"SetRenderPipelineState Render Pipeline",
		"SetVertexBuffer cube vertices 0 0",
		fmt.Sprintf("SetVertexBytes %d 1", ConstantsSize),
		"SetFragmentTexture checkerboard 0",
		"SetFragmentSamplerState sampler 0",
		fmt.Sprintf("DrawIndexedPrimitives %d 36 %d cube indices 0", gpu.PrimitiveTypeTriangle, gpu.IndexTypeUint16),
		"PopDebugGroup",
		"EndEncoding",
		"Present",
		"Commit",
	}

	if strings.Join(device.commands, "\n") != strings.Join(exp, "\n") {
		t.Fatalf("unexpected commands.\nexpected:\n%s\ngot:\n%s", strings.Join(exp, "\n"), strings.Join(device.commands, "\n"))
	}

	if len(device.buffers) != 1 || !device.buffers[0].committed || device.buffers[0].presented != 1 {
		t.Fatalf("expected one committed command buffer with one present")
	}

	c := r.Constants()
	expBytes := c.Bytes(nil)
	if string(device.lastConstants) != string(expBytes) {
		t.Fatal("expected the uploaded constants to match Renderer.Constants")
	}
}

func TestDrawWithoutPassDescriptor(t *testing.T) {

	r, device, surface := newTestRenderer(t)
	defer r.Release()

	surface.noPass = true
	r.OnDraw(surface)

	if len(device.buffers) != 0 || len(device.commands) != 0 {
		t.Fatalf("expected no command buffer and no commands; got %d buffers and commands %v", len(device.buffers), device.commands)
	}

	// Animation still advances
	if r.ElapsedTime() == 0 {
		t.Fatal("expected elapsed time to advance on skipped frames")
	}
}

func TestDrawWithoutDrawable(t *testing.T) {

	r, device, surface := newTestRenderer(t)
	defer r.Release()

	surface.noDrawable = true
	r.OnDraw(surface)

	if len(device.buffers) != 1 || !device.buffers[0].committed {
		t.Fatal("expected the command buffer to be committed without a drawable")
	}

	if device.buffers[0].presented != 0 {
		t.Fatal("expected nothing to be presented")
	}

	last := device.commands[len(device.commands)-1]
	if last != "Commit" {
		t.Fatalf("expected Commit last; got %s", last)
	}
}

func TestTimestep(t *testing.T) {

	r, _, surface := newTestRenderer(t)
	defer r.Release()

	surface.fps = 120
	r.OnDraw(surface)
	r.OnDraw(surface)

	if diff := r.ElapsedTime() - 2.0/120; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("expected elapsed time %f; got %f", 2.0/120, r.ElapsedTime())
	}

	device := newFakeDevice()
	opts := DefaultOptions()
	opts.Timestep = TimestepMeasured
	opts.MeasuredDT = func() float64 { return 0.25 }

	measured, err := New(surface, acquireFake(device), bundledStore(), opts)
	if err != nil {
		t.Fatal(err)
	}
	defer measured.Release()

	measured.OnDraw(surface)
	if measured.ElapsedTime() != 0.25 {
		t.Fatalf("expected measured elapsed time 0.25; got %f", measured.ElapsedTime())
	}
}

func TestParseTimestep(t *testing.T) {

	if ts, err := ParseTimestep("measured"); err != nil || ts != TimestepMeasured {
		t.Fatalf("expected measured; got %v, %v", ts, err)
	}

	if ts, err := ParseTimestep(""); err != nil || ts != TimestepFixed {
		t.Fatalf("expected fixed; got %v, %v", ts, err)
	}

	if _, err := ParseTimestep("variable"); err == nil {
		t.Fatal("expected error for unknown timestep")
	}
}

func TestUpdateIsDeterministic(t *testing.T) {

	r, _, _ := newTestRenderer(t)
	defer r.Release()

	r.Update(0.3)
	first := r.Constants()

	r.Update(0)
	r.Update(0)
	if r.Constants() != first {
		t.Fatal("expected Update(0) to leave the constants unchanged")
	}
}

func TestZeroHeightKeepsAspect(t *testing.T) {

	r, _, surface := newTestRenderer(t)
	defer r.Release()

	r.Update(0.1)
	before := r.Constants()

	surface.width, surface.height = 0, 0
	r.Update(0)

	after := r.Constants()
	if after != before {
		t.Fatal("expected constants to keep the previous aspect ratio on a zero sized surface")
	}

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			v := after.ModelViewProjectionMatrix.Data[col][row]
			if v != v {
				t.Fatalf("NaN in mvp at [%d][%d]", col, row)
			}
		}
	}
}

func TestNewFailures(t *testing.T) {

	specs := []struct {
		name    string
		failOn  string
		noStore bool
		opts    func(o *Options)
		expKind error
	}{
		{name: "queue", failOn: "queue", expKind: ErrNoCompatibleDevice},
		{name: "pipeline", failOn: "pipeline", expKind: ErrPipelineCompilation},
		{name: "missing entry point", opts: func(o *Options) { o.ShaderLibrary = []byte("//shader:vertex vertex_transform\nvoid main() {}\n") }, expKind: ErrPipelineCompilation},
		{name: "mesh", failOn: "buffer", expKind: ErrAssetLoad},
		{name: "texture upload", failOn: "texture", expKind: ErrAssetLoad},
		{name: "missing texture", noStore: true, expKind: ErrAssetLoad},
		{name: "unknown texture", opts: func(o *Options) { o.TextureName = "bricks" }, expKind: ErrAssetLoad},
		{name: "depth", failOn: "depth", expKind: ErrNoCompatibleDevice},
		{name: "sampler", failOn: "sampler", expKind: ErrNoCompatibleDevice},
	}

	for _, spec := range specs {

		device := newFakeDevice()
		device.failOn = spec.failOn

		var store assets.Store = bundledStore()
		if spec.noStore {
			store = assets.NewFSStore(fstest.MapFS{}, "")
		}

		opts := DefaultOptions()
		if spec.opts != nil {
			spec.opts(&opts)
		}

		r, err := New(newFakeSurface(), acquireFake(device), store, opts)
		if r != nil {
			t.Errorf("[%s] expected nil renderer on failure", spec.name)
		}

		var initErr *InitError
		if !errors.As(err, &initErr) {
			t.Errorf("[%s] expected *InitError; got %T: %v", spec.name, err, err)
			continue
		}

		if !errors.Is(err, spec.expKind) {
			t.Errorf("[%s] expected kind %v; got %v", spec.name, spec.expKind, err)
		}

		if unreleased := device.unreleased(); len(unreleased) > 0 {
			t.Errorf("[%s] expected partial resources to be released; leaked %v", spec.name, unreleased)
		}

		if device.released != 1 {
			t.Errorf("[%s] expected the device to be released once; got %d", spec.name, device.released)
		}
	}
}

func TestNewFailureKeepsCause(t *testing.T) {

	device := newFakeDevice()
	device.failOn = "pipeline"

	_, err := New(newFakeSurface(), acquireFake(device), bundledStore(), DefaultOptions())
	if !errors.Is(err, gpu.ErrPipelineLink) {
		t.Fatalf("expected the link error to be kept as the cause; got %v", err)
	}

	_, err = New(newFakeSurface(), acquireFake(newFakeDevice()), assets.NewFSStore(fstest.MapFS{}, ""), DefaultOptions())
	if !errors.Is(err, assets.ErrNotFound) {
		t.Fatalf("expected assets.ErrNotFound as the cause; got %v", err)
	}
}

func TestNoDevice(t *testing.T) {

	specs := []struct {
		name    string
		acquire DeviceFunc
	}{
		{"nil device", func() (gpu.Device, error) { return nil, nil }},
		{"error", func() (gpu.Device, error) { return nil, gpu.ErrNoDevice }},
	}

	for _, spec := range specs {

		r, err := New(newFakeSurface(), spec.acquire, bundledStore(), DefaultOptions())
		if r != nil {
			t.Errorf("[%s] expected nil renderer", spec.name)
		}

		if !errors.Is(err, ErrNoCompatibleDevice) {
			t.Errorf("[%s] expected ErrNoCompatibleDevice; got %v", spec.name, err)
		}
	}
}

func TestRelease(t *testing.T) {

	r, device, _ := newTestRenderer(t)

	r.Release()
	r.Release()

	if unreleased := device.unreleased(); len(unreleased) > 0 {
		t.Fatalf("expected every resource released exactly once; got %v", unreleased)
	}

	if device.released != 1 {
		t.Fatalf("expected the device to be released once; got %d", device.released)
	}
}
