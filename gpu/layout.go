package gpu

import "github.com/bloeys/texcube/assert"

type UniformType int

const (
	UniformTypeFloat32 UniformType = iota
	UniformTypeInt32
	UniformTypeVec2
	UniformTypeVec3
	UniformTypeVec4
	UniformTypeMat3
	UniformTypeMat4
)

func (u UniformType) String() string {

	switch u {
	case UniformTypeFloat32:
		return "float32"
	case UniformTypeInt32:
		return "int32"
	case UniformTypeVec2:
		return "Vec2"
	case UniformTypeVec3:
		return "Vec3"
	case UniformTypeVec4:
		return "Vec4"
	case UniformTypeMat3:
		return "Mat3"
	case UniformTypeMat4:
		return "Mat4"
	}

	return "Unknown"
}

// std140BaseAlignment returns the alignment boundary of a single (non-array) field
func (u UniformType) std140BaseAlignment() int {

	switch u {
	case UniformTypeFloat32, UniformTypeInt32:
		return 4
	case UniformTypeVec2:
		return 8
	case UniformTypeVec3, UniformTypeVec4, UniformTypeMat3, UniformTypeMat4:
		return 16
	}

	assert.T(false, "Unknown uniform type passed. Type '%d'", u)
	return 0
}

// std140Size returns the bytes a single field occupies. Matrices are an array
// of column vectors where each column takes a full vec4.
func (u UniformType) std140Size() int {

	switch u {
	case UniformTypeFloat32, UniformTypeInt32:
		return 4
	case UniformTypeVec2:
		return 8
	case UniformTypeVec3:
		return 12
	case UniformTypeVec4:
		return 16
	case UniformTypeMat3:
		return 3 * 16
	case UniformTypeMat4:
		return 4 * 16
	}

	assert.T(false, "Unknown uniform type passed. Type '%d'", u)
	return 0
}

// UniformField is one member of a uniform block.
// Count=0 is equivalent to Count=1, which means the field is NOT an array.
type UniformField struct {
	Type  UniformType
	Count int
}

// Std140Layout returns the byte offset of each field and the total block size
// (rounded up to 16 bytes) following the std140 rules.
func Std140Layout(fields ...UniformField) (offsets []int, size int) {

	offsets = make([]int, len(fields))

	offset := 0
	for i := 0; i < len(fields); i++ {

		f := fields[i]
		assert.T(f.Count >= 0, "Negative count for uniform field %d", i)

		// Arrays of scalars/vectors are always aligned to 16 bytes with each element padded to a vec4
		alignment := f.Type.std140BaseAlignment()
		fieldSize := f.Type.std140Size()
		if f.Count > 1 {
			alignment = 16
			fieldSize = padTo16Boundary(fieldSize) * f.Count
		}

		// Say we are at offset 100 and are adding a vec4 (16 byte boundary).
		// alignErr=100%16=4, so the next boundary is 100+(16-4)=112
		alignErr := offset % alignment
		if alignErr != 0 {
			offset += alignment - alignErr
		}

		offsets[i] = offset
		offset += fieldSize
	}

	return offsets, padTo16Boundary(offset)
}

func padTo16Boundary(val int) int {

	alignErr := val % 16
	if alignErr != 0 {
		val += 16 - alignErr
	}

	return val
}
