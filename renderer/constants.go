package renderer

import (
	"encoding/binary"
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/texcube/gpu"
)

// Constants is the per-frame data the vertex function reads from the Constants uniform block
type Constants struct {
	ModelViewProjectionMatrix gglm.Mat4
	NormalMatrix              gglm.Mat3
}

var constantsOffsets, ConstantsSize = gpu.Std140Layout(
	gpu.UniformField{Type: gpu.UniformTypeMat4},
	gpu.UniformField{Type: gpu.UniformTypeMat3},
)

// Bytes writes c into buf using std140 rules and returns it.
// buf is grown to ConstantsSize if it is smaller.
func (c *Constants) Bytes(buf []byte) []byte {

	if cap(buf) < ConstantsSize {
		buf = make([]byte, ConstantsSize)
	}
	buf = buf[:ConstantsSize]

	off := constantsOffsets[0]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			putFloat32(buf[off:], c.ModelViewProjectionMatrix.Data[col][row])
			off += 4
		}
	}

	// Each mat3 column is padded to a vec4
	off = constantsOffsets[1]
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			putFloat32(buf[off+row*4:], c.NormalMatrix.Data[col][row])
		}
		putFloat32(buf[off+12:], 0)
		off += 16
	}

	return buf
}

func putFloat32(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}
