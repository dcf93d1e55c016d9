package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// UniformBuffer holds std140 laid out data. Offsets are computed with gpu.Std140Layout.
type UniformBuffer struct {
	Id uint32
	// Size is the allocated memory in bytes on the GPU for this uniform buffer
	Size uint32
}

func (ub *UniformBuffer) Bind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.Id)
}

func (ub *UniformBuffer) UnBind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (ub *UniformBuffer) SetBindPoint(bindPointIndex uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindPointIndex, ub.Id)
}

// SetData replaces the buffer contents, growing the allocation if data doesn't fit
func (ub *UniformBuffer) SetData(data []byte) {

	if len(data) == 0 {
		return
	}

	ub.Bind()

	if uint32(len(data)) > ub.Size {
		ub.Size = uint32(len(data))
		gl.BufferData(gl.UNIFORM_BUFFER, len(data), gl.Ptr(&data[0]), BufUsage_Dynamic_Draw.ToGL())
		return
	}

	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(&data[0]))
}

func (ub *UniformBuffer) Delete() {
	gl.DeleteBuffers(1, &ub.Id)
	ub.Id = 0
}

func NewUniformBuffer(size uint32) UniformBuffer {

	ub := UniformBuffer{Size: size}

	gl.GenBuffers(1, &ub.Id)
	if ub.Id == 0 {
		logger.Error("Failed to create OpenGL buffer")
		return ub
	}

	ub.Bind()
	gl.BufferData(gl.UNIFORM_BUFFER, int(size), gl.Ptr(nil), BufUsage_Dynamic_Draw.ToGL())

	return ub
}
