package renderer

import (
	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/meshes"
	"github.com/bloeys/texcube/shaders"
	"github.com/pkg/errors"
)

const (
	pipelineLabel        = "Render Pipeline"
	shaderLibraryLabel   = "textured-mesh"
	vertexFunctionName   = "vertex_transform"
	fragmentFunctionName = "fragment_lit_textured"
)

func buildRenderPipeline(device gpu.Device, surface gpu.Surface, librarySrc []byte) (gpu.RenderPipelineState, error) {

	lib, err := shaders.ParseLibrary(shaderLibraryLabel, librarySrc)
	if err != nil {
		return nil, err
	}

	vertexFunc, err := lib.Function(vertexFunctionName)
	if err != nil {
		return nil, err
	}

	fragmentFunc, err := lib.Function(fragmentFunctionName)
	if err != nil {
		return nil, err
	}

	desc := &gpu.RenderPipelineDescriptor{
		Label:            pipelineLabel,
		VertexFunction:   vertexFunc,
		FragmentFunction: fragmentFunc,
		VertexDescriptor: meshes.VertexDescriptor,
		SampleCount:      surface.SampleCount(),
		ColorPixelFormat: surface.ColorPixelFormat(),
		DepthPixelFormat: surface.DepthStencilPixelFormat(),
	}

	pipeline, err := device.NewRenderPipelineState(desc)
	if err != nil {
		return nil, errors.Wrapf(err, "creating '%s'", pipelineLabel)
	}

	return pipeline, nil
}

func buildDepthStencilState(device gpu.Device, compareFunc gpu.CompareFunction, isWriteEnabled bool) (gpu.DepthStencilState, error) {
	return device.NewDepthStencilState(&gpu.DepthStencilDescriptor{
		DepthCompareFunction: compareFunc,
		DepthWriteEnabled:    isWriteEnabled,
	})
}

func buildSamplerState(device gpu.Device, addressMode gpu.SamplerAddressMode, filter gpu.SamplerMinMagFilter) (gpu.SamplerState, error) {
	return device.NewSamplerState(&gpu.SamplerDescriptor{
		SAddressMode: addressMode,
		TAddressMode: addressMode,
		MinFilter:    filter,
		MagFilter:    filter,
	})
}
