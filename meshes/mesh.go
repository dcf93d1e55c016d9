package meshes

import (
	"encoding/binary"
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/texcube/assert"
	"github.com/bloeys/texcube/gpu"
	"github.com/pkg/errors"
)

/*
VertexDescriptor is the layout of every mesh vertex buffer:
  - Loc0: Pos
  - Loc1: Normal
  - Loc2: UV0
*/
var VertexDescriptor = gpu.NewVertexDescriptor(
	gpu.VertexFormatFloat3, // Position
	gpu.VertexFormatFloat3, // Normal
	gpu.VertexFormatFloat2, // UV0
)

// Geometry is the CPU side data a Mesh is built from. Triangles are expected in counter-clockwise order.
type Geometry struct {
	Positions []gglm.Vec3
	Normals   []gglm.Vec3
	UV0s      []gglm.Vec2
	Indices   []uint32
}

func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// Validate checks that attribute arrays line up and every index points to a vertex
func (g *Geometry) Validate() error {

	if len(g.Positions) == 0 {
		return errors.New("geometry has no vertices")
	}

	if len(g.Normals) != len(g.Positions) || len(g.UV0s) != len(g.Positions) {
		return errors.Errorf("geometry attribute counts differ. Positions=%d; Normals=%d; UV0s=%d", len(g.Positions), len(g.Normals), len(g.UV0s))
	}

	if len(g.Indices) == 0 || len(g.Indices)%3 != 0 {
		return errors.Errorf("geometry index count must be a non-zero multiple of 3, but is %d", len(g.Indices))
	}

	for i, index := range g.Indices {
		if int(index) >= len(g.Positions) {
			return errors.Errorf("index %d at position %d is out of range of %d vertices", index, i, len(g.Positions))
		}
	}

	return nil
}

// IndexType picks 16-bit indices whenever the vertex count allows
func (g *Geometry) IndexType() gpu.IndexType {

	if len(g.Positions) <= math.MaxUint16+1 {
		return gpu.IndexTypeUint16
	}

	return gpu.IndexTypeUint32
}

// VertexBytes returns the interleaved vertices in the VertexDescriptor layout
func (g *Geometry) VertexBytes() []byte {

	floats := interleave(
		arrToInterleave{V3s: g.Positions},
		arrToInterleave{V3s: g.Normals},
		arrToInterleave{V2s: g.UV0s},
	)

	out := make([]byte, len(floats)*4)
	for i := 0; i < len(floats); i++ {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(floats[i]))
	}

	return out
}

func (g *Geometry) IndexBytes() []byte {

	indexType := g.IndexType()
	out := make([]byte, len(g.Indices)*indexType.Size())

	for i := 0; i < len(g.Indices); i++ {
		if indexType == gpu.IndexTypeUint16 {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(g.Indices[i]))
		} else {
			binary.LittleEndian.PutUint32(out[i*4:], g.Indices[i])
		}
	}

	return out
}

// Mesh is GPU geometry ready to be drawn. It is immutable after creation.
type Mesh struct {
	Name          string
	VertexBuffer  gpu.Buffer
	IndexBuffer   gpu.Buffer
	IndexCount    int
	IndexType     gpu.IndexType
	PrimitiveType gpu.PrimitiveType
}

func NewMesh(device gpu.Device, name string, geom *Geometry) (*Mesh, error) {

	if err := geom.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid geometry for mesh '%s'", name)
	}

	vb, err := device.NewBuffer(geom.VertexBytes(), gpu.BufferUsageVertex, name+" vertices")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create vertex buffer of mesh '%s'", name)
	}

	ib, err := device.NewBuffer(geom.IndexBytes(), gpu.BufferUsageIndex, name+" indices")
	if err != nil {
		vb.Release()
		return nil, errors.Wrapf(err, "failed to create index buffer of mesh '%s'", name)
	}

	return &Mesh{
		Name:          name,
		VertexBuffer:  vb,
		IndexBuffer:   ib,
		IndexCount:    len(geom.Indices),
		IndexType:     geom.IndexType(),
		PrimitiveType: gpu.PrimitiveTypeTriangle,
	}, nil
}

func (m *Mesh) Release() {
	m.VertexBuffer.Release()
	m.IndexBuffer.Release()
}

type arrToInterleave struct {
	V2s []gglm.Vec2
	V3s []gglm.Vec3
	V4s []gglm.Vec4
}

func (a *arrToInterleave) get(i int) []float32 {

	assert.T(len(a.V2s) == 0 || len(a.V3s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")
	assert.T(len(a.V2s) == 0 || len(a.V4s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")
	assert.T(len(a.V3s) == 0 || len(a.V4s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")

	if len(a.V2s) > 0 {
		return a.V2s[i].Data[:]
	} else if len(a.V3s) > 0 {
		return a.V3s[i].Data[:]
	} else {
		return a.V4s[i].Data[:]
	}
}

func (a *arrToInterleave) len() int {
	return len(a.V2s) + len(a.V3s) + len(a.V4s)
}

func (a *arrToInterleave) compCount() int {

	if len(a.V2s) > 0 {
		return 2
	} else if len(a.V3s) > 0 {
		return 3
	}

	return 4
}

func interleave(arrs ...arrToInterleave) []float32 {

	assert.T(len(arrs) > 0, "No input sent to interleave")
	assert.T(arrs[0].len() > 0, "Interleave arrays are empty")

	elementCount := arrs[0].len()

	//Calculate final size of the float buffer
	totalSize := 0
	for i := 0; i < len(arrs); i++ {
		assert.T(arrs[i].len() == elementCount, "Mesh vertex data given to interleave is not the same length")
		totalSize += arrs[i].len() * arrs[i].compCount()
	}

	out := make([]float32, 0, totalSize)
	for i := 0; i < elementCount; i++ {
		for arrToUse := 0; arrToUse < len(arrs); arrToUse++ {
			out = append(out, arrs[arrToUse].get(i)...)
		}
	}

	return out
}
