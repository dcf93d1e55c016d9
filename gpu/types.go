package gpu

import (
	"fmt"
	"strings"
)

type PixelFormat int

const (
	PixelFormatInvalid PixelFormat = iota
	PixelFormatRGBA8Unorm
	PixelFormatRGBA8UnormSRGB
	PixelFormatBGRA8Unorm
	PixelFormatBGRA8UnormSRGB
	PixelFormatDepth32Float
	PixelFormatDepth24UnormStencil8
)

var pixelFormatNames = map[PixelFormat]string{
	PixelFormatRGBA8Unorm:           "rgba8unorm",
	PixelFormatRGBA8UnormSRGB:       "rgba8unorm_srgb",
	PixelFormatBGRA8Unorm:           "bgra8unorm",
	PixelFormatBGRA8UnormSRGB:       "bgra8unorm_srgb",
	PixelFormatDepth32Float:         "depth32float",
	PixelFormatDepth24UnormStencil8: "depth24unorm_stencil8",
}

func (p PixelFormat) String() string {

	if name, ok := pixelFormatNames[p]; ok {
		return name
	}

	return "invalid"
}

func (p PixelFormat) IsDepth() bool {
	return p == PixelFormatDepth32Float || p == PixelFormatDepth24UnormStencil8
}

func (p PixelFormat) IsColor() bool {
	return p != PixelFormatInvalid && !p.IsDepth()
}

func (p PixelFormat) IsSRGB() bool {
	return p == PixelFormatRGBA8UnormSRGB || p == PixelFormatBGRA8UnormSRGB
}

// DepthBits is the size of the depth component, or 0 for color formats
func (p PixelFormat) DepthBits() int {

	switch p {
	case PixelFormatDepth32Float:
		return 32
	case PixelFormatDepth24UnormStencil8:
		return 24
	}

	return 0
}

func (p PixelFormat) StencilBits() int {

	if p == PixelFormatDepth24UnormStencil8 {
		return 8
	}

	return 0
}

// ParsePixelFormat parses the lower case names returned by PixelFormat.String
func ParsePixelFormat(s string) (PixelFormat, error) {

	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range pixelFormatNames {
		if name == s {
			return f, nil
		}
	}

	return PixelFormatInvalid, fmt.Errorf("unknown pixel format '%s'", s)
}

type CompareFunction int

const (
	CompareFunctionNever CompareFunction = iota
	CompareFunctionLess
	CompareFunctionEqual
	CompareFunctionLessEqual
	CompareFunctionGreater
	CompareFunctionNotEqual
	CompareFunctionGreaterEqual
	CompareFunctionAlways
)

type SamplerAddressMode int

const (
	SamplerAddressModeClampToEdge SamplerAddressMode = iota
	SamplerAddressModeRepeat
	SamplerAddressModeMirrorRepeat
)

type SamplerMinMagFilter int

const (
	SamplerMinMagFilterNearest SamplerMinMagFilter = iota
	SamplerMinMagFilterLinear
)

type Winding int

const (
	WindingClockwise Winding = iota
	WindingCounterClockwise
)

type CullMode int

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

type PrimitiveType int

const (
	PrimitiveTypePoint PrimitiveType = iota
	PrimitiveTypeLine
	PrimitiveTypeLineStrip
	PrimitiveTypeTriangle
	PrimitiveTypeTriangleStrip
)

type IndexType int

const (
	IndexTypeUint16 IndexType = iota
	IndexTypeUint32
)

// Size returns the size of one index in bytes
func (i IndexType) Size() int {

	if i == IndexTypeUint16 {
		return 2
	}

	return 4
}

type LoadAction int

const (
	LoadActionDontCare LoadAction = iota
	LoadActionLoad
	LoadActionClear
)

type BufferUsage int

const (
	BufferUsageVertex BufferUsage = iota
	BufferUsageIndex
)

type ClearColor struct {
	R, G, B, A float64
}
