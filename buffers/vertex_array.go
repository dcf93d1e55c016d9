package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexArray struct {
	Id uint32
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// AddVertexBuffer points every attribute of the buffer's layout at the vbo, starting
// baseOffset bytes into it. Attribute i of the layout goes to location i.
func (va *VertexArray) AddVertexBuffer(vbo *VertexBuffer, baseOffset int) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]

		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), l.ElementType.CompCount(), l.ElementType.GLType(), false, vbo.Stride, uintptr(baseOffset+l.Offset))
	}
}

func (va *VertexArray) SetIndexBuffer(ib *IndexBuffer) {
	va.Bind()
	ib.Bind()
}

func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logger.Error("Failed to create OpenGL vertex array object")
	}

	return vao
}
