package gpugl

import (
	"github.com/bloeys/texcube/buffers"
	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

var _ gpu.RenderPipelineState = &RenderPipelineState{}

type RenderPipelineState struct {
	label   string
	program shaderProgram

	vao buffers.VertexArray
	// layout is the vertex descriptor turned into attribute pointers
	layout      buffers.VertexBuffer
	bufferIndex int

	sampleCount int
	srgb        bool

	// Last vertex buffer the vao was pointed at
	boundVbo       uint32
	boundVboOffset int
}

func (d *Device) NewRenderPipelineState(desc *gpu.RenderPipelineDescriptor) (gpu.RenderPipelineState, error) {

	if err := validatePipelineDescriptor(desc); err != nil {
		return nil, err
	}

	program, err := newShaderProgram(desc.VertexFunction, desc.FragmentFunction)
	if err != nil {
		return nil, errors.Wrapf(err, "creating pipeline '%s'", desc.Label)
	}

	p := &RenderPipelineState{
		label:       desc.Label,
		program:     program,
		vao:         buffers.NewVertexArray(),
		sampleCount: desc.SampleCount,
		srgb:        desc.ColorPixelFormat.IsSRGB(),
	}

	if len(desc.VertexDescriptor.Attributes) > 0 {
		p.bufferIndex = desc.VertexDescriptor.Attributes[0].BufferIndex
	}
	p.layout.SetLayoutFromDescriptor(desc.VertexDescriptor)

	p.applyBindings(desc.VertexFunction)
	p.applyBindings(desc.FragmentFunction)

	logger.Debugf("Created pipeline '%s' from '%s' and '%s'", desc.Label, desc.VertexFunction.Name, desc.FragmentFunction.Name)
	return p, nil
}

func validatePipelineDescriptor(desc *gpu.RenderPipelineDescriptor) error {

	if desc.VertexFunction == nil || desc.VertexFunction.Stage != shaders.Stage_Vertex {
		return errors.Wrapf(gpu.ErrShaderCompile, "pipeline '%s' needs a vertex function", desc.Label)
	}

	if desc.FragmentFunction == nil || desc.FragmentFunction.Stage != shaders.Stage_Fragment {
		return errors.Wrapf(gpu.ErrShaderCompile, "pipeline '%s' needs a fragment function", desc.Label)
	}

	if !desc.ColorPixelFormat.IsColor() {
		return errors.Wrapf(gpu.ErrUnsupportedFormat, "pipeline '%s' color attachment can't use %s", desc.Label, desc.ColorPixelFormat)
	}

	if desc.DepthPixelFormat != gpu.PixelFormatInvalid && !desc.DepthPixelFormat.IsDepth() {
		return errors.Wrapf(gpu.ErrUnsupportedFormat, "pipeline '%s' depth attachment can't use %s", desc.Label, desc.DepthPixelFormat)
	}

	attrs := desc.VertexDescriptor.Attributes
	for i := 0; i < len(attrs); i++ {

		if buffers.ElementTypeFromVertexFormat(attrs[i].Format) == buffers.DataTypeUnknown {
			return errors.Wrapf(gpu.ErrUnsupportedFormat, "pipeline '%s' vertex attribute %d has an unknown format", desc.Label, i)
		}

		// Attributes are read from one interleaved buffer
		if attrs[i].BufferIndex != attrs[0].BufferIndex {
			return errors.Wrapf(gpu.ErrUnsupportedFormat, "pipeline '%s' vertex attributes must share one buffer index", desc.Label)
		}

		if attrs[i].Offset+attrs[i].Format.Size() > desc.VertexDescriptor.Stride {
			return errors.Wrapf(gpu.ErrUnsupportedFormat, "pipeline '%s' vertex attribute %d doesn't fit in the stride", desc.Label, i)
		}
	}

	return nil
}

// applyBindings maps named uniform blocks and samplers to the slots the encoder binds to,
// since GLSL 4.10 has no layout(binding=N)
func (p *RenderPipelineState) applyBindings(f *shaders.Function) {

	for _, b := range f.Bindings {

		switch b.Kind {
		case shaders.BindingKind_Buffer:
			blockIndex := gl.GetUniformBlockIndex(p.program.Id, gl.Str(b.Name+"\x00"))
			if blockIndex == gl.INVALID_INDEX {
				logger.Warningf("Uniform block '%s' of function '%s' is not active in pipeline '%s'", b.Name, f.Name, p.label)
				continue
			}
			gl.UniformBlockBinding(p.program.Id, blockIndex, uint32(b.Slot))

		case shaders.BindingKind_Texture:
			loc := gl.GetUniformLocation(p.program.Id, gl.Str(b.Name+"\x00"))
			if loc < 0 {
				logger.Warningf("Sampler '%s' of function '%s' is not active in pipeline '%s'", b.Name, f.Name, p.label)
				continue
			}
			gl.ProgramUniform1i(p.program.Id, loc, int32(b.Slot))
		}
	}
}

func (p *RenderPipelineState) bind() {

	gl.UseProgram(p.program.Id)

	if p.sampleCount > 1 {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}

	if p.srgb {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	} else {
		gl.Disable(gl.FRAMEBUFFER_SRGB)
	}
}

// bindVertexBuffer points the vao attributes at vb, only respecifying them when vb or offset changed
func (p *RenderPipelineState) bindVertexBuffer(vb *buffers.VertexBuffer, offset int) {

	if p.boundVbo == vb.Id && p.boundVboOffset == offset {
		p.vao.Bind()
		return
	}

	p.layout.Id = vb.Id
	p.vao.AddVertexBuffer(&p.layout, offset)

	p.boundVbo = vb.Id
	p.boundVboOffset = offset
}

func (p *RenderPipelineState) Label() string {
	return p.label
}

func (p *RenderPipelineState) Release() {

	p.program.delete()

	if p.vao.Id != 0 {
		p.vao.Delete()
	}
}
