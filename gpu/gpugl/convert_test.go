package gpugl

import (
	"errors"
	"testing"

	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestTextureFormats(t *testing.T) {

	specs := []struct {
		format     gpu.PixelFormat
		internal   uint32
		pixelOrder uint32
	}{
		{gpu.PixelFormatRGBA8Unorm, gl.RGBA8, gl.RGBA},
		{gpu.PixelFormatRGBA8UnormSRGB, gl.SRGB8_ALPHA8, gl.RGBA},
		{gpu.PixelFormatBGRA8Unorm, gl.RGBA8, gl.BGRA},
		{gpu.PixelFormatBGRA8UnormSRGB, gl.SRGB8_ALPHA8, gl.BGRA},
	}

	for specIndex, spec := range specs {

		f, ok := textureFormats[spec.format]
		if !ok {
			t.Errorf("[spec %d] format %s has no GL mapping", specIndex, spec.format)
			continue
		}

		if f[0] != spec.internal || f[1] != spec.pixelOrder || f[2] != gl.UNSIGNED_BYTE {
			t.Errorf("[spec %d] unexpected mapping %v for %s", specIndex, f, spec.format)
		}
	}

	if _, ok := textureFormats[gpu.PixelFormatDepth32Float]; ok {
		t.Error("depth formats can't be used for sampled textures")
	}
}

func TestStateConversions(t *testing.T) {

	if compareFuncToGL(gpu.CompareFunctionLess) != gl.LESS || compareFuncToGL(gpu.CompareFunctionAlways) != gl.ALWAYS {
		t.Error("unexpected compare function mapping")
	}

	if windingToGL(gpu.WindingCounterClockwise) != gl.CCW || windingToGL(gpu.WindingClockwise) != gl.CW {
		t.Error("unexpected winding mapping")
	}

	if primitiveToGL(gpu.PrimitiveTypeTriangle) != gl.TRIANGLES || primitiveToGL(gpu.PrimitiveTypeLineStrip) != gl.LINE_STRIP {
		t.Error("unexpected primitive mapping")
	}

	if indexTypeToGL(gpu.IndexTypeUint16) != gl.UNSIGNED_SHORT || indexTypeToGL(gpu.IndexTypeUint32) != gl.UNSIGNED_INT {
		t.Error("unexpected index type mapping")
	}

	if addressModeToGL(gpu.SamplerAddressModeRepeat) != gl.REPEAT || filterToGL(gpu.SamplerMinMagFilterLinear) != gl.LINEAR {
		t.Error("unexpected sampler mapping")
	}

	if _, ok := stageToGL(shaders.Stage_Unknown); ok {
		t.Error("unknown stage should have no GL shader type")
	}
}

func TestValidatePipelineDescriptor(t *testing.T) {

	vert := &shaders.Function{Name: "v", Stage: shaders.Stage_Vertex}
	frag := &shaders.Function{Name: "f", Stage: shaders.Stage_Fragment}
	valid := func() *gpu.RenderPipelineDescriptor {
		return &gpu.RenderPipelineDescriptor{
			Label:            "test",
			VertexFunction:   vert,
			FragmentFunction: frag,
			VertexDescriptor: gpu.NewVertexDescriptor(gpu.VertexFormatFloat3, gpu.VertexFormatFloat2),
			SampleCount:      4,
			ColorPixelFormat: gpu.PixelFormatBGRA8Unorm,
			DepthPixelFormat: gpu.PixelFormatDepth32Float,
		}
	}

	if err := validatePipelineDescriptor(valid()); err != nil {
		t.Fatal(err)
	}

	specs := []struct {
		mutate func(d *gpu.RenderPipelineDescriptor)
		expErr error
	}{
		{func(d *gpu.RenderPipelineDescriptor) { d.VertexFunction = frag }, gpu.ErrShaderCompile},
		{func(d *gpu.RenderPipelineDescriptor) { d.FragmentFunction = nil }, gpu.ErrShaderCompile},
		{func(d *gpu.RenderPipelineDescriptor) { d.ColorPixelFormat = gpu.PixelFormatDepth32Float }, gpu.ErrUnsupportedFormat},
		{func(d *gpu.RenderPipelineDescriptor) { d.DepthPixelFormat = gpu.PixelFormatRGBA8Unorm }, gpu.ErrUnsupportedFormat},
		{func(d *gpu.RenderPipelineDescriptor) { d.VertexDescriptor.Attributes[1].BufferIndex = 2 }, gpu.ErrUnsupportedFormat},
		{func(d *gpu.RenderPipelineDescriptor) { d.VertexDescriptor.Stride = 8 }, gpu.ErrUnsupportedFormat},
		{func(d *gpu.RenderPipelineDescriptor) {
			d.VertexDescriptor.Attributes[0].Format = gpu.VertexFormatInvalid
		}, gpu.ErrUnsupportedFormat},
	}

	for specIndex, spec := range specs {

		d := valid()
		spec.mutate(d)

		err := validatePipelineDescriptor(d)
		if !errors.Is(err, spec.expErr) {
			t.Errorf("[spec %d] expected %v; got %v", specIndex, spec.expErr, err)
		}
	}
}
