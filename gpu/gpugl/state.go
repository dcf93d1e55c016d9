package gpugl

import (
	"github.com/bloeys/texcube/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

var (
	_ gpu.SamplerState      = &SamplerState{}
	_ gpu.DepthStencilState = &DepthStencilState{}
)

type SamplerState struct {
	Id uint32
}

func (d *Device) NewSamplerState(desc *gpu.SamplerDescriptor) (gpu.SamplerState, error) {

	s := &SamplerState{}
	gl.GenSamplers(1, &s.Id)
	if s.Id == 0 {
		return nil, errors.New("failed to generate sampler")
	}

	gl.SamplerParameteri(s.Id, gl.TEXTURE_WRAP_S, addressModeToGL(desc.SAddressMode))
	gl.SamplerParameteri(s.Id, gl.TEXTURE_WRAP_T, addressModeToGL(desc.TAddressMode))
	gl.SamplerParameteri(s.Id, gl.TEXTURE_MIN_FILTER, filterToGL(desc.MinFilter))
	gl.SamplerParameteri(s.Id, gl.TEXTURE_MAG_FILTER, filterToGL(desc.MagFilter))

	return s, nil
}

func (s *SamplerState) Release() {

	if s.Id == 0 {
		return
	}

	gl.DeleteSamplers(1, &s.Id)
	s.Id = 0
}

// DepthStencilState has no GL object, it is applied as plain state when set on an encoder
type DepthStencilState struct {
	compareFunc uint32
	writeMask   bool
}

func (d *Device) NewDepthStencilState(desc *gpu.DepthStencilDescriptor) (gpu.DepthStencilState, error) {
	return &DepthStencilState{
		compareFunc: compareFuncToGL(desc.DepthCompareFunction),
		writeMask:   desc.DepthWriteEnabled,
	}, nil
}

func (s *DepthStencilState) apply() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(s.compareFunc)
	gl.DepthMask(s.writeMask)
}

func (s *DepthStencilState) Release() {
}
