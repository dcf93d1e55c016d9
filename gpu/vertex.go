package gpu

type VertexFormat int

const (
	VertexFormatInvalid VertexFormat = iota
	VertexFormatFloat
	VertexFormatFloat2
	VertexFormatFloat3
	VertexFormatFloat4
)

// CompCount returns the number of float components (e.g. for Float3 its 3)
func (f VertexFormat) CompCount() int {

	switch f {
	case VertexFormatFloat:
		return 1
	case VertexFormatFloat2:
		return 2
	case VertexFormatFloat3:
		return 3
	case VertexFormatFloat4:
		return 4
	}

	return 0
}

// Size returns the size in bytes (e.g. for Float3 its 3*4=12 bytes)
func (f VertexFormat) Size() int {
	return f.CompCount() * 4
}

type VertexAttribute struct {
	Format VertexFormat
	// Offset in bytes from the start of the vertex
	Offset int
	// BufferIndex is the vertex buffer slot the attribute is read from
	BufferIndex int
}

// VertexDescriptor describes interleaved vertices. Attribute i is read from shader location i.
type VertexDescriptor struct {
	Attributes []VertexAttribute
	Stride     int
}

// NewVertexDescriptor lays out the formats one after the other in buffer slot 0
func NewVertexDescriptor(formats ...VertexFormat) VertexDescriptor {

	vd := VertexDescriptor{
		Attributes: make([]VertexAttribute, len(formats)),
	}

	for i := 0; i < len(formats); i++ {
		vd.Attributes[i] = VertexAttribute{Format: formats[i], Offset: vd.Stride}
		vd.Stride += formats[i].Size()
	}

	return vd
}
