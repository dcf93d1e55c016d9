package gpugl

import (
	"github.com/bloeys/texcube/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

var _ gpu.Texture = &Texture{}

type Texture struct {
	Id     uint32
	width  int32
	height int32
	format gpu.PixelFormat
}

// NewTexture creates a 2D texture without mipmaps from tightly packed 4 byte pixels
func (d *Device) NewTexture(desc *gpu.TextureDescriptor, pixels []byte) (gpu.Texture, error) {

	glFormat, ok := textureFormats[desc.PixelFormat]
	if !ok {
		return nil, errors.Wrapf(gpu.ErrUnsupportedFormat, "texture '%s' can't use pixel format %s", desc.Label, desc.PixelFormat)
	}

	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, errors.Errorf("texture '%s' has invalid size %dx%d", desc.Label, desc.Width, desc.Height)
	}

	expectedLen := int(desc.Width) * int(desc.Height) * 4
	if len(pixels) != expectedLen {
		return nil, errors.Errorf("texture '%s' needs %d bytes of pixel data but got %d", desc.Label, expectedLen, len(pixels))
	}

	tex := &Texture{
		width:  desc.Width,
		height: desc.Height,
		format: desc.PixelFormat,
	}

	gl.GenTextures(1, &tex.Id)
	if tex.Id == 0 {
		return nil, errors.Errorf("failed to generate texture '%s'", desc.Label)
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.Id)

	// Rows are tightly packed
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(glFormat[0]), desc.Width, desc.Height, 0, glFormat[1], glFormat[2], gl.Ptr(&pixels[0]))

	// Only level 0 exists, otherwise the texture is incomplete when sampled
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Debugf("Created texture '%s' (%dx%d %s)", desc.Label, desc.Width, desc.Height, desc.PixelFormat)
	return tex, nil
}

func (t *Texture) Width() int32 {
	return t.width
}

func (t *Texture) Height() int32 {
	return t.height
}

func (t *Texture) PixelFormat() gpu.PixelFormat {
	return t.format
}

func (t *Texture) Release() {

	if t.Id == 0 {
		return
	}

	gl.DeleteTextures(1, &t.Id)
	t.Id = 0
}
