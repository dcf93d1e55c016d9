package buffers

import (
	"github.com/bloeys/texcube/assert"
	"github.com/bloeys/texcube/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element represents an attribute inside an interleaved vertex buffer (e.g. Vec3 at an offset of 12 bytes)
type Element struct {
	Offset int
	ElementType
}

// ElementType is the type of one vertex attribute (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeFloat32
	DataTypeVec2
	DataTypeVec3
	DataTypeVec4
)

func ElementTypeFromVertexFormat(f gpu.VertexFormat) ElementType {

	switch f {
	case gpu.VertexFormatFloat:
		return DataTypeFloat32
	case gpu.VertexFormatFloat2:
		return DataTypeVec2
	case gpu.VertexFormatFloat3:
		return DataTypeVec3
	case gpu.VertexFormatFloat4:
		return DataTypeVec4
	}

	return DataTypeUnknown
}

func (dt ElementType) GLType() uint32 {

	switch dt {
	case DataTypeFloat32, DataTypeVec2, DataTypeVec3, DataTypeVec4:
		return gl.FLOAT
	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {
	case DataTypeFloat32:
		return 1
	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeVec4:
		return 4
	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompCount() * 4
}

func (dt ElementType) String() string {

	switch dt {
	case DataTypeFloat32:
		return "float32"
	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"
	case DataTypeVec4:
		return "Vec4"
	default:
		return "Unknown"
	}
}
