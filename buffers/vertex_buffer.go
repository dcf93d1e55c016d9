package buffers

import (
	"github.com/bloeys/texcube/gpu"
	"github.com/bloeys/texcube/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var logger = logging.New("buffers")

type VertexBuffer struct {
	Id     uint32
	Size   int
	Stride int32
	layout []Element
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (vb *VertexBuffer) SetData(data []byte, usage BufUsage) {

	vb.Bind()

	vb.Size = len(data)
	if vb.Size == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, gl.Ptr(nil), usage.ToGL())
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, vb.Size, gl.Ptr(&data[0]), usage.ToGL())
	}
}

func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout))
	copy(e, vb.layout)
	return e
}

// SetLayoutFromDescriptor uses the explicit offsets and stride of the descriptor
// instead of packing the elements tightly
func (vb *VertexBuffer) SetLayoutFromDescriptor(desc gpu.VertexDescriptor) {

	vb.Stride = int32(desc.Stride)
	vb.layout = make([]Element, len(desc.Attributes))
	for i, a := range desc.Attributes {
		vb.layout[i] = Element{Offset: a.Offset, ElementType: ElementTypeFromVertexFormat(a.Format)}
	}
}

func (vb *VertexBuffer) SetLayout(layout ...Element) {

	vb.Stride = 0
	vb.layout = layout

	for i := 0; i < len(vb.layout); i++ {

		vb.layout[i].Offset = int(vb.Stride)
		vb.Stride += vb.layout[i].Size()
	}
}

func (vb *VertexBuffer) Delete() {
	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(layout ...Element) VertexBuffer {

	vb := VertexBuffer{}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logger.Error("Failed to create OpenGL buffer")
	}

	vb.SetLayout(layout...)
	return vb
}
