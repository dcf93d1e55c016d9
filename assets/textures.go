package assets

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/logging"
	"github.com/mandykoh/prism"
	"github.com/pkg/errors"
)

var logger = logging.New("assets")

type TextureLoadOptions struct {
	// NoSrgba uploads the texels as linear instead of sRGB encoded
	NoSrgba bool
	// KeepOrientation skips flipping rows. By default the first image row is placed at v=1
	KeepOrientation bool
}

func (o *TextureLoadOptions) pixelFormat() gpu.PixelFormat {

	if o.NoSrgba {
		return gpu.PixelFormatRGBA8Unorm
	}

	return gpu.PixelFormatRGBA8UnormSRGB
}

// DecodeImage decodes a png or jpeg into tightly packed 8-bit non-premultiplied RGBA
func DecodeImage(data []byte, opts *TextureLoadOptions) (*image.NRGBA, error) {

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, errors.Wrapf(ErrMalformed, "image has invalid size %dx%d", bounds.Dx(), bounds.Dy())
	}

	nrgbaImg := prism.ConvertImageToNRGBA(img, 2)

	// Make sure the pixel data starts at (0,0) with no row padding
	if nrgbaImg.Rect.Min != (image.Point{}) || nrgbaImg.Stride != nrgbaImg.Rect.Dx()*4 {
		packed := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(packed, packed.Rect, nrgbaImg, nrgbaImg.Rect.Min, draw.Src)
		nrgbaImg = packed
	}

	if opts == nil || !opts.KeepOrientation {
		flipRows(nrgbaImg)
	}

	return nrgbaImg, nil
}

func flipRows(img *image.NRGBA) {

	h := img.Rect.Dy()
	tmp := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// LoadTexture loads the named image from the store and uploads it as a 2D texture
func LoadTexture(device gpu.Device, store Store, name string, opts *TextureLoadOptions) (gpu.Texture, error) {

	if opts == nil {
		opts = &TextureLoadOptions{}
	}

	data, err := store.Load(name)
	if err != nil {
		return nil, err
	}

	img, err := DecodeImage(data, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "texture '%s'", name)
	}

	desc := &gpu.TextureDescriptor{
		Label:       name,
		PixelFormat: opts.pixelFormat(),
		Width:       int32(img.Rect.Dx()),
		Height:      int32(img.Rect.Dy()),
	}

	tex, err := device.NewTexture(desc, img.Pix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create texture '%s'", name)
	}

	logger.Debugf("Loaded texture '%s' (%dx%d %s)", name, desc.Width, desc.Height, desc.PixelFormat)
	return tex, nil
}
