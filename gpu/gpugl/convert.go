package gpugl

import (
	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// textureFormats maps a pixel format to its internal format, pixel format and pixel type
var textureFormats = map[gpu.PixelFormat][3]uint32{
	gpu.PixelFormatRGBA8Unorm:     {gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE},
	gpu.PixelFormatRGBA8UnormSRGB: {gl.SRGB8_ALPHA8, gl.RGBA, gl.UNSIGNED_BYTE},
	gpu.PixelFormatBGRA8Unorm:     {gl.RGBA8, gl.BGRA, gl.UNSIGNED_BYTE},
	gpu.PixelFormatBGRA8UnormSRGB: {gl.SRGB8_ALPHA8, gl.BGRA, gl.UNSIGNED_BYTE},
}

func compareFuncToGL(f gpu.CompareFunction) uint32 {

	switch f {
	case gpu.CompareFunctionNever:
		return gl.NEVER
	case gpu.CompareFunctionLess:
		return gl.LESS
	case gpu.CompareFunctionEqual:
		return gl.EQUAL
	case gpu.CompareFunctionLessEqual:
		return gl.LEQUAL
	case gpu.CompareFunctionGreater:
		return gl.GREATER
	case gpu.CompareFunctionNotEqual:
		return gl.NOTEQUAL
	case gpu.CompareFunctionGreaterEqual:
		return gl.GEQUAL
	}

	return gl.ALWAYS
}

func addressModeToGL(m gpu.SamplerAddressMode) int32 {

	switch m {
	case gpu.SamplerAddressModeRepeat:
		return gl.REPEAT
	case gpu.SamplerAddressModeMirrorRepeat:
		return gl.MIRRORED_REPEAT
	}

	return gl.CLAMP_TO_EDGE
}

func filterToGL(f gpu.SamplerMinMagFilter) int32 {

	if f == gpu.SamplerMinMagFilterLinear {
		return gl.LINEAR
	}

	return gl.NEAREST
}

func windingToGL(w gpu.Winding) uint32 {

	if w == gpu.WindingClockwise {
		return gl.CW
	}

	return gl.CCW
}

func primitiveToGL(p gpu.PrimitiveType) uint32 {

	switch p {
	case gpu.PrimitiveTypePoint:
		return gl.POINTS
	case gpu.PrimitiveTypeLine:
		return gl.LINES
	case gpu.PrimitiveTypeLineStrip:
		return gl.LINE_STRIP
	case gpu.PrimitiveTypeTriangleStrip:
		return gl.TRIANGLE_STRIP
	}

	return gl.TRIANGLES
}

func indexTypeToGL(i gpu.IndexType) uint32 {

	if i == gpu.IndexTypeUint16 {
		return gl.UNSIGNED_SHORT
	}

	return gl.UNSIGNED_INT
}

func stageToGL(s shaders.Stage) (uint32, bool) {

	switch s {
	case shaders.Stage_Vertex:
		return gl.VERTEX_SHADER, true
	case shaders.Stage_Fragment:
		return gl.FRAGMENT_SHADER, true
	case shaders.Stage_Geometry:
		return gl.GEOMETRY_SHADER, true
	}

	return 0, false
}
