package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

type IndexBuffer struct {
	Id uint32
	// Size is the number of bytes in the index buffer. Updated in IndexBuffer.SetData
	Size int
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Id)
}

func (ib *IndexBuffer) UnBind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// SetData uploads raw index data. The index type is picked per draw call.
func (ib *IndexBuffer) SetData(data []byte) {

	ib.Bind()

	ib.Size = len(data)
	if ib.Size == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, gl.Ptr(nil), BufUsage_Static_Draw.ToGL())
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ib.Size, gl.Ptr(&data[0]), BufUsage_Static_Draw.ToGL())
	}
}

func (ib *IndexBuffer) Delete() {
	gl.DeleteBuffers(1, &ib.Id)
	ib.Id = 0
}

func NewIndexBuffer() IndexBuffer {

	ib := IndexBuffer{}

	gl.GenBuffers(1, &ib.Id)
	if ib.Id == 0 {
		logger.Error("Failed to create OpenGL buffer")
	}

	return ib
}
