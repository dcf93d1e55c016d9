package gpugl

import (
	"github.com/bloeys/texcube/buffers"
	"github.com/bloeys/texcube/gpu"
	"github.com/pkg/errors"
)

var _ gpu.Buffer = &Buffer{}

// Buffer is either a vertex or an index buffer depending on its usage
type Buffer struct {
	label string
	usage gpu.BufferUsage

	vb buffers.VertexBuffer
	ib buffers.IndexBuffer
}

func (d *Device) NewBuffer(data []byte, usage gpu.BufferUsage, label string) (gpu.Buffer, error) {

	if len(data) == 0 {
		return nil, errors.Errorf("buffer '%s' has no data", label)
	}

	b := &Buffer{
		label: label,
		usage: usage,
	}

	switch usage {
	case gpu.BufferUsageVertex:
		b.vb = buffers.NewVertexBuffer()
		if b.vb.Id == 0 {
			return nil, errors.Errorf("failed to create vertex buffer '%s'", label)
		}
		b.vb.SetData(data, buffers.BufUsage_Static_Draw)
		b.vb.UnBind()

	case gpu.BufferUsageIndex:
		b.ib = buffers.NewIndexBuffer()
		if b.ib.Id == 0 {
			return nil, errors.Errorf("failed to create index buffer '%s'", label)
		}
		b.ib.SetData(data)
		b.ib.UnBind()

	default:
		return nil, errors.Errorf("unknown usage %d for buffer '%s'", usage, label)
	}

	return b, nil
}

func (b *Buffer) Label() string {
	return b.label
}

func (b *Buffer) Usage() gpu.BufferUsage {
	return b.usage
}

func (b *Buffer) Length() int {

	if b.usage == gpu.BufferUsageIndex {
		return b.ib.Size
	}

	return b.vb.Size
}

func (b *Buffer) Release() {

	if b.vb.Id != 0 {
		b.vb.Delete()
	}

	if b.ib.Id != 0 {
		b.ib.Delete()
	}
}
